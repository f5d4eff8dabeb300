// Package movable implements ordering of sibling collections through a dense
// integer position. Siblings are ordered by position, then by id.
package movable

import (
	"slices"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

// Sort orders items in place by position, then id.
func Sort[E domain.Movable](items []E) {
	slices.SortStableFunc(items, func(a, b E) int { return domain.Compare(a, b) })
}

// Sorted returns a sorted copy of items.
func Sorted[E domain.Movable](items []E) []E {
	out := slices.Clone(items)
	Sort(out)
	return out
}

// IndexOf returns the index of the item with id in sorted order, -1 when missing.
func IndexOf[E domain.Movable](items []E, id int) int {
	return slices.IndexFunc(Sorted(items), func(item E) bool { return item.GetID() == id })
}

// Find returns the item with id.
func Find[E domain.Movable](items []E, id int) (E, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// NextPosition returns the position an appended item gets: max+1, or 0 when empty.
func NextPosition[E domain.Movable](items []E) int {
	if len(items) == 0 {
		return 0
	}
	highest := items[0].GetPosition()
	for _, item := range items[1:] {
		if p := item.GetPosition(); p > highest {
			highest = p
		}
	}
	return highest + 1
}

// Append positions item after all items and appends it.
func Append[E domain.Movable](items []E, item E) []E {
	item.SetPosition(NextPosition(items))
	return append(items, item)
}

// Remove drops the item with id. It reports whether an item was removed.
func Remove[E domain.Movable](items []E, id int) ([]E, bool) {
	i := slices.IndexFunc(items, func(item E) bool { return item.GetID() == id })
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// Replace swaps the item with the same id for item. It reports whether a match was found.
func Replace[E domain.Movable](items []E, item E) bool {
	i := slices.IndexFunc(items, func(existing E) bool { return existing.GetID() == item.GetID() })
	if i < 0 {
		return false
	}
	items[i] = item
	return true
}

// Renumber sorts items and assigns positions 0..n-1.
func Renumber[E domain.Movable](items []E) {
	Sort(items)
	for i, item := range items {
		item.SetPosition(i)
	}
}

// CanMoveUp reports whether the item with id has a preceding sibling.
func CanMoveUp[E domain.Movable](items []E, id int) bool {
	return IndexOf(items, id) > 0
}

// CanMoveDown reports whether the item with id has a following sibling.
func CanMoveDown[E domain.Movable](items []E, id int) bool {
	i := IndexOf(items, id)
	return i >= 0 && i < len(items)-1
}

// MoveUp swaps the item with id and its preceding sibling.
// It returns the items whose position changed, nil when no move is possible.
func MoveUp[E domain.Movable](items []E, id int) []E {
	return move(items, id, -1)
}

// MoveDown swaps the item with id and its following sibling.
// It returns the items whose position changed, nil when no move is possible.
func MoveDown[E domain.Movable](items []E, id int) []E {
	return move(items, id, 1)
}

func move[E domain.Movable](items []E, id, offset int) []E {
	Sort(items)
	i := slices.IndexFunc(items, func(item E) bool { return item.GetID() == id })
	j := i + offset
	if i < 0 || j < 0 || j >= len(items) {
		return nil
	}

	before := make([]int, len(items))
	for k, item := range items {
		before[k] = item.GetPosition()
	}

	// equal positions cannot be swapped, fall back to dense numbering first
	if items[i].GetPosition() == items[j].GetPosition() {
		for k, item := range items {
			item.SetPosition(k)
		}
	}

	a, b := items[i], items[j]
	pa, pb := a.GetPosition(), b.GetPosition()
	a.SetPosition(pb)
	b.SetPosition(pa)

	var changed []E
	for k, item := range items {
		if item.GetPosition() != before[k] {
			changed = append(changed, item)
		}
	}
	Sort(items)
	return changed
}
