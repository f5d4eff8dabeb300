// Package mapper converts between the API-facing entity records and the
// persisted domain models.
package mapper

import (
	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
)

// Mapper converts one kind of record in both directions.
type Mapper[E entity.Record, D domain.Movable] interface {
	ToEntity(data D) E
	ToDomain(data E) D
}

// funcs is a Mapper built from a pair of conversion functions. Nil in gives nil out.
type funcs[E entity.Record, D domain.Record[D]] struct {
	toEntity func(D) E
	toDomain func(E) D
}

func (m funcs[E, D]) ToEntity(data D) E {
	var zero D
	if data == zero {
		var none E
		return none
	}
	return m.toEntity(data)
}

func (m funcs[E, D]) ToDomain(data E) D {
	var zero E
	if data == zero {
		var none D
		return none
	}
	return m.toDomain(data)
}

// ToEntities converts a slice of domain models.
func ToEntities[E entity.Record, D domain.Movable](m Mapper[E, D], data []D) []E {
	out := make([]E, 0, len(data))
	for _, item := range data {
		out = append(out, m.ToEntity(item))
	}
	return out
}

// ToDomains converts a slice of entities.
func ToDomains[E entity.Record, D domain.Movable](m Mapper[E, D], data []E) []D {
	out := make([]D, 0, len(data))
	for _, item := range data {
		out = append(out, m.ToDomain(item))
	}
	return out
}

func item(i domain.Item) entity.Item {
	return entity.Item{ID: id(i.ID), Position: entity.Ptr(i.Position)}
}

func domainItem(i entity.Item) domain.Item {
	return domain.Item{ID: value(i.ID), Position: value(i.Position)}
}

// id returns nil for the zero id of a record that was never stored.
func id(v int) *int {
	if v == 0 {
		return nil
	}
	return entity.Ptr(v)
}

func value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func language(l domain.Language) *entity.Language {
	if l == "" {
		return nil
	}
	return entity.Ptr(entity.Language(l))
}

func languages(in []domain.Language) []*entity.Language {
	out := make([]*entity.Language, 0, len(in))
	for _, l := range in {
		out = append(out, language(l))
	}
	return out
}

func domainLanguages(in []*entity.Language) []domain.Language {
	out := make([]domain.Language, 0, len(in))
	for _, l := range in {
		if l != nil {
			out = append(out, domain.Language(*l))
		}
	}
	return out
}
