package normalize

import (
	"prospect-finder/internal/enrichers"
	"prospect-finder/internal/models"
)

// source selects the object a candidate path is read from.
type source int

const (
	fromEntity source = iota
	fromProfile
	fromEmailInfo
)

// candidate is one place a field value may come from.
type candidate struct {
	source source
	path   string
}

// inputs are the objects available to the rules.
type inputs struct {
	entity    models.Entity
	profile   models.Entity
	emailInfo models.Entity
}

func (in inputs) lookup(c candidate) (interface{}, bool) {
	switch c.source {
	case fromProfile:
		return in.profile.Lookup(c.path)
	case fromEmailInfo:
		return in.emailInfo.Lookup(c.path)
	default:
		return in.entity.Lookup(c.path)
	}
}

// stringRule fills a string field with the first truthy scalar candidate.
type stringRule struct {
	candidates []candidate
	fallback   string
	derived    func(inputs) string
	assign     func(*models.NormalizedRecord, string)
}

// arrayRule fills an array field with the first non-empty array candidate.
type arrayRule struct {
	candidates []candidate
	assign     func(*models.NormalizedRecord, []interface{})
}

func entityPaths(paths ...string) []candidate {
	return withSource(fromEntity, paths...)
}

func profilePaths(paths ...string) []candidate {
	return withSource(fromProfile, paths...)
}

func withSource(src source, paths ...string) []candidate {
	out := make([]candidate, len(paths))
	for i, p := range paths {
		out[i] = candidate{source: src, path: p}
	}
	return out
}

var stringRules = []stringRule{
	{
		candidates: entityPaths("name", "fullName", "displayName"),
		fallback:   models.PlaceholderName,
		assign:     func(r *models.NormalizedRecord, v string) { r.Name = v },
	},
	{
		candidates: entityPaths("headline", "title", "jobTitle", "description"),
		fallback:   models.PlaceholderHeadline,
		assign:     func(r *models.NormalizedRecord, v string) { r.Headline = v },
	},
	{
		candidates: entityPaths("location", "geoLocation", "area"),
		fallback:   models.PlaceholderLocation,
		assign:     func(r *models.NormalizedRecord, v string) { r.Location = v },
	},
	{
		candidates: entityPaths("url", "profileUrl", "linkedinUrl"),
		assign:     func(r *models.NormalizedRecord, v string) { r.URL = v },
	},
	{
		candidates: entityPaths("image", "profileImage", "avatar"),
		assign:     func(r *models.NormalizedRecord, v string) { r.Image = v },
	},
	{
		// composite URN first, then the raw forms
		derived:    func(in inputs) string { return enrichers.CompositeURN(in.entity) },
		candidates: entityPaths("urn.value", "urn", "id"),
		assign:     func(r *models.NormalizedRecord, v string) { r.URN = v },
	},
	{
		candidates: entityPaths("alias"),
		assign:     func(r *models.NormalizedRecord, v string) { r.Alias = v },
	},
	{
		candidates: entityPaths("internal_id.value"),
		assign:     func(r *models.NormalizedRecord, v string) { r.InternalID = v },
	},
	{
		candidates: entityPaths("internal_id.value", "id"),
		assign:     func(r *models.NormalizedRecord, v string) { r.LinkedinID = v },
	},
	{
		candidates: append(withSource(fromEmailInfo, "email"), entityPaths("email", "emailAddress")...),
		assign:     func(r *models.NormalizedRecord, v string) { r.Email = v },
	},
	{
		candidates: append(withSource(fromEmailInfo, "phone"), entityPaths("phone", "phoneNumber")...),
		assign:     func(r *models.NormalizedRecord, v string) { r.Phone = v },
	},
}

var arrayRules = []arrayRule{
	{
		candidates: profilePaths("experience", "workExperience", "positions"),
		assign:     func(r *models.NormalizedRecord, v []interface{}) { r.Experience = v },
	},
	{
		candidates: profilePaths("education", "schools", "academicBackground"),
		assign:     func(r *models.NormalizedRecord, v []interface{}) { r.Education = v },
	},
	{
		candidates: profilePaths("skills", "endorsements", "expertise"),
		assign:     func(r *models.NormalizedRecord, v []interface{}) { r.Skills = v },
	},
}

func (rule stringRule) apply(in inputs, record *models.NormalizedRecord) {
	if rule.derived != nil {
		if v := rule.derived(in); v != "" {
			rule.assign(record, v)
			return
		}
	}
	for _, c := range rule.candidates {
		v, _ := in.lookup(c)
		if s, ok := models.ScalarString(v); ok {
			rule.assign(record, s)
			return
		}
	}
	rule.assign(record, rule.fallback)
}

func (rule arrayRule) apply(in inputs, record *models.NormalizedRecord) {
	for _, c := range rule.candidates {
		v, _ := in.lookup(c)
		if arr, ok := v.([]interface{}); ok && len(arr) > 0 {
			rule.assign(record, arr)
			return
		}
	}
	rule.assign(record, []interface{}{})
}
