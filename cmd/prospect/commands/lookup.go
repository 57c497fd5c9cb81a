package commands

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"prospect-finder/internal/contact"
	"prospect-finder/internal/models"
)

func lookupCmd() *cobra.Command {
	var asVCard bool

	cmd := &cobra.Command{
		Use:   "lookup [name...]",
		Short: "Find a prospect by name and print the enriched record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			record, found, err := appCtx.Service.Lookup(cmd.Context(), name)
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), record, found, asVCard)
		},
	}

	cmd.Flags().BoolVar(&asVCard, "vcard", false, "print the match as a vCard instead of JSON")
	return cmd
}

func printRecord(w io.Writer, record *models.NormalizedRecord, found, asVCard bool) error {
	if !found {
		if asVCard {
			return errors.New(models.NoMatchMessage)
		}
		return writeJSON(w, models.MessageResponse{Message: models.NoMatchMessage})
	}
	if asVCard {
		return contact.Encode(w, record)
	}
	return writeJSON(w, record)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
