// Package entity holds the API-facing catalog records.
//
// Required text fields are pointers so that a missing value and an empty one
// can be told apart by validation. ID and Position are nil until assigned.
package entity

// Movable is a record taking part in an ordered sibling collection.
type Movable interface {
	GetID() *int
	GetPosition() *int
}

// Record is the contract of entities handled by the generic layers.
type Record interface {
	comparable
	Movable
}

// Item carries identity and ordering of a catalog record.
type Item struct {
	ID       *int `json:"id,omitempty"`
	Position *int `json:"position,omitempty"`
}

// GetID returns the identifier.
func (i *Item) GetID() *int {
	return i.ID
}

// GetPosition returns the sibling position.
func (i *Item) GetPosition() *int {
	return i.Position
}

// Language of audio or subtitles.
type Language string

const (
	LanguageCZ Language = "CZ"
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	LanguageJP Language = "JP"
	LanguageSK Language = "SK"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
