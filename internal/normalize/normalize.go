// Package normalize merges a search match and its enrichment bundle into
// the stable NormalizedRecord shape. Field fallbacks are declared as data
// in rules.go.
package normalize

import (
	"time"

	"prospect-finder/internal/models"
)

// Normalize builds the record for entity. now stamps lastUpdated.
func Normalize(entity models.Entity, bundle models.EnrichmentBundle, query string, now time.Time) *models.NormalizedRecord {
	in := inputs{
		entity:  entity,
		profile: bundle.DetailedProfile,
	}
	if len(bundle.EmailInfo) > 0 {
		in.emailInfo, _ = models.AsEntity(bundle.EmailInfo[0])
	}

	record := &models.NormalizedRecord{
		RawUserData:        entity,
		OpenToWork:         models.Truthy(entity["open_to_work"]),
		Posts:              orEmpty(bundle.Posts),
		Reactions:          orEmpty(bundle.Reactions),
		RawDetailedProfile: bundle.DetailedProfile,
		RawPosts:           bundle.Posts,
		RawReactions:       bundle.Reactions,
		RawEmailInfo:       bundle.EmailInfo,
		HasDetailedData:    bundle.HasDetailedData(),
		DataSourcesAvailable: models.DataSources{
			BasicProfile:    entity != nil,
			DetailedProfile: bundle.DetailedProfile != nil,
			Posts:           bundle.Posts != nil,
			Reactions:       bundle.Reactions != nil,
			EmailLookup:     bundle.EmailInfo != nil,
		},
		LastUpdated: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		SearchQuery: query,
		APIResponse: models.CompleteDataNotice,
	}

	for _, rule := range stringRules {
		rule.apply(in, record)
	}
	for _, rule := range arrayRules {
		rule.apply(in, record)
	}

	return record
}

func orEmpty(items []interface{}) []interface{} {
	if items == nil {
		return []interface{}{}
	}
	return items
}
