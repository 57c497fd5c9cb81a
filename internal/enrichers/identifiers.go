package enrichers

import "prospect-finder/internal/models"

// CompositeURN returns "<urn.type>:<urn.value>" when both parts exist,
// otherwise urn.value, otherwise urn itself when it is a plain string.
func CompositeURN(entity models.Entity) string {
	urnType := entity.String("urn.type")
	urnValue := entity.String("urn.value")
	if urnType != "" && urnValue != "" {
		return urnType + ":" + urnValue
	}
	if urnValue != "" {
		return urnValue
	}
	return entity.String("urn")
}

// ResolveIdentifiers lists the identifiers a profile can be looked up by,
// most specific first: alias, url, composite URN, bare URN value. Empty and
// repeated values are dropped.
func ResolveIdentifiers(entity models.Entity) []string {
	candidates := []string{
		entity.String("alias"),
		entity.String("url"),
		CompositeURN(entity),
		entity.String("urn.value"),
	}

	seen := make(map[string]struct{}, len(candidates))
	identifiers := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		identifiers = append(identifiers, id)
	}
	return identifiers
}
