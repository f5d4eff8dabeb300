// Package domain holds the persistence-facing catalog models.
package domain

import (
	"cmp"
	"slices"
)

// Movable is an item that takes part in an ordered sibling collection.
type Movable interface {
	GetID() int
	GetPosition() int
	SetPosition(position int)
}

// Record is the contract of catalog models handled by the generic layers.
// E is the pointer type implementing it.
type Record[E any] interface {
	comparable
	Movable

	// Clone returns a deep copy sharing no slices with the receiver.
	Clone() E
	// Detach clears the identity of the record and of everything it owns,
	// and renumbers owned children, so that saving it creates new rows.
	Detach()
	// Renumber assigns positions 0..n-1 to owned children in their current order.
	Renumber()
}

// Item carries identity and ordering of a catalog record.
type Item struct {
	ID       int `gorm:"primaryKey"`
	Position int `gorm:"not null;default:0"`
}

// GetID returns the identifier, 0 when not persisted.
func (i *Item) GetID() int {
	return i.ID
}

// GetPosition returns the sibling position.
func (i *Item) GetPosition() int {
	return i.Position
}

// SetPosition sets the sibling position.
func (i *Item) SetPosition(position int) {
	i.Position = position
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

// Languages lists all supported languages.
var Languages = []Language{LanguageCZ, LanguageEN, LanguageFR, LanguageJP, LanguageSK}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, language := range Languages {
		if l == language {
			return true
		}
	}
	return false
}

// Compare orders siblings by position, then by id.
func Compare(a, b Movable) int {
	if c := cmp.Compare(a.GetPosition(), b.GetPosition()); c != 0 {
		return c
	}
	return cmp.Compare(a.GetID(), b.GetID())
}

// renumber assigns positions 0..n-1 in the order of items sorted by position then id.
func renumber[E Movable](items []E) {
	slices.SortStableFunc(items, func(a, b E) int { return Compare(a, b) })
	for i, item := range items {
		item.SetPosition(i)
	}
}

func cloneSlice[E interface{ Clone() E }](items []E) []E {
	if items == nil {
		return nil
	}
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func cloneLanguages(languages []Language) []Language {
	if languages == nil {
		return nil
	}
	return append([]Language(nil), languages...)
}
