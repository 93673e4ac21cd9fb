package scratchcard

import (
	"time"
)

// DateLayout is how the last issue date is recorded: one card per calendar day.
const DateLayout = "2006-01-02"

// Card represents a promotional scratch card from the reward catalog.
type Card struct {
	ID           string         `json:"id" yaml:"id"`
	Type         string         `json:"type" yaml:"type"`
	Value        float64        `json:"value" yaml:"value"`
	Description  string         `json:"description" yaml:"description"`
	Category     string         `json:"category" yaml:"category"`
	MinimumOrder float64        `json:"minimumOrder" yaml:"minimum_order"`
	ExpiresIn    int            `json:"expiresIn" yaml:"expires_in"`
	When         map[string]any `json:"-" yaml:"when"`
}

// Record is a card shown to a session, claimed or dismissed.
type Record struct {
	Card
	Claimed bool `json:"claimed"`
}

// Upsert stores the card with the claim flag, replacing an existing record with the same id.
func Upsert(records []Record, card Card, claimed bool) []Record {
	out := make([]Record, len(records), len(records)+1)
	copy(out, records)

	for i := range out {
		if out[i].ID == card.ID {
			out[i] = Record{Card: card, Claimed: claimed}
			return out
		}
	}

	return append(out, Record{Card: card, Claimed: claimed})
}

// Find returns the record with the id.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}

	return Record{}, false
}

// Day formats the calendar day of t in its location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}
