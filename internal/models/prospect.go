package models

// Output placeholders and fixed messages returned to callers.
const (
	PlaceholderName     = "Nom non disponible"
	PlaceholderHeadline = "Titre non disponible"
	PlaceholderLocation = "Localisation non disponible"

	NoMatchMessage     = "Aucun prospect trouvé."
	CompleteDataNotice = "Toutes les données disponibles affichées"
)

// EnrichmentBundle collects the optional follow-up lookups for one match.
// A nil field means the source could not be reached with any identifier;
// a non-nil empty slice means the provider answered with no items.
type EnrichmentBundle struct {
	DetailedProfile Entity
	Posts           []interface{}
	Reactions       []interface{}
	EmailInfo       []interface{}
}

// HasDetailedData reports whether profile, posts or reactions contributed.
func (b EnrichmentBundle) HasDetailedData() bool {
	return b.DetailedProfile != nil || b.Posts != nil || b.Reactions != nil
}

// DataSources flags which sources contributed to a record
type DataSources struct {
	BasicProfile    bool `json:"basicProfile"`
	DetailedProfile bool `json:"detailedProfile"`
	Posts           bool `json:"posts"`
	Reactions       bool `json:"reactions"`
	EmailLookup     bool `json:"emailLookup"`
}

// NormalizedRecord is the stable response shape for a matched prospect.
// No field uses omitempty; raw payloads are null when their source is absent.
type NormalizedRecord struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	URN      string `json:"urn"`
	Alias    string `json:"alias"`

	RawUserData Entity `json:"rawUserData"`

	OpenToWork bool   `json:"openToWork"`
	InternalID string `json:"internalId"`
	LinkedinID string `json:"linkedinId"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	Experience []interface{} `json:"experience"`
	Education  []interface{} `json:"education"`
	Skills     []interface{} `json:"skills"`
	Posts      []interface{} `json:"posts"`
	Reactions  []interface{} `json:"reactions"`

	RawDetailedProfile Entity        `json:"rawDetailedProfile"`
	RawPosts           []interface{} `json:"rawPosts"`
	RawReactions       []interface{} `json:"rawReactions"`
	RawEmailInfo       []interface{} `json:"rawEmailInfo"`

	HasDetailedData      bool        `json:"hasDetailedData"`
	DataSourcesAvailable DataSources `json:"dataSourcesAvailable"`

	LastUpdated string `json:"lastUpdated"`
	SearchQuery string `json:"searchQuery"`
	APIResponse string `json:"apiResponse"`
}
