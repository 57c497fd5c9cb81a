// Package contact exports normalised prospects as vCard 4.0 contacts so
// they can be imported into an address book.
package contact

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
	"prospect-finder/internal/models"
)

// ContentType is the media type of an encoded card
const ContentType = "text/vcard; charset=utf-8"

// BuildCard maps a record onto vCard fields. Placeholder values are left
// out; FN always carries the display name since vCard 4.0 requires it.
func BuildCard(record *models.NormalizedRecord) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldFormattedName, record.Name)
	card.SetValue(vcard.FieldKind, string(vcard.KindIndividual))

	setIf(card, vcard.FieldUID, record.URN)
	setIf(card, vcard.FieldTitle, nonPlaceholder(record.Headline, models.PlaceholderHeadline))
	setIf(card, vcard.FieldNote, nonPlaceholder(record.Location, models.PlaceholderLocation))
	setIf(card, vcard.FieldURL, record.URL)
	setIf(card, vcard.FieldPhoto, record.Image)
	setIf(card, vcard.FieldOrganization, currentCompany(record.Experience))

	if record.Email != "" {
		card.Add(vcard.FieldEmail, &vcard.Field{
			Value:  record.Email,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeWork}},
		})
	}
	if record.Phone != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  record.Phone,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeWork}},
		})
	}

	return card
}

// Encode writes record as a single vCard
func Encode(w io.Writer, record *models.NormalizedRecord) error {
	if err := vcard.NewEncoder(w).Encode(BuildCard(record)); err != nil {
		return fmt.Errorf("failed to encode vCard: %w", err)
	}
	return nil
}

func setIf(card vcard.Card, field, value string) {
	if value != "" {
		card.SetValue(field, value)
	}
}

func nonPlaceholder(value, placeholder string) string {
	if value == placeholder {
		return ""
	}
	return value
}

// currentCompany reads the company of the first experience entry, which the
// provider lists most recent first.
func currentCompany(experience []interface{}) string {
	if len(experience) == 0 {
		return ""
	}
	entry, ok := models.AsEntity(experience[0])
	if !ok {
		return ""
	}
	for _, path := range []string{"company", "company_name", "companyName", "company.name"} {
		if name := entry.String(path); name != "" {
			return name
		}
	}
	return ""
}
