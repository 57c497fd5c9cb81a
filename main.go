package main

import (
	"log"

	_ "prospect-finder/docs"
	"prospect-finder/internal/app"
)

// @title Prospect Finder API
// @version 1.0.0
// @description Finds a LinkedIn prospect by name through the HorizonDataWave API and returns an enriched, normalised record.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
