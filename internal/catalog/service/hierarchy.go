package service

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// Family is the children of one parent and the way to persist changes of them.
// Children belong to a copy of the root aggregate, Commit saves that copy.
type Family[C domain.Movable] struct {
	ParentID int
	children []C
	assign   func([]C)
	commit   func(ctx context.Context) error
}

// Children returns the children in stored order.
func (f *Family[C]) Children() []C {
	return f.children
}

// Find returns the child with id.
func (f *Family[C]) Find(id int) (C, bool) {
	for _, child := range f.children {
		if child.GetID() == id {
			return child, true
		}
	}
	var zero C
	return zero, false
}

// Set replaces the children of the parent.
func (f *Family[C]) Set(children []C) {
	f.children = children
	f.assign(children)
}

// Commit saves the root aggregate.
func (f *Family[C]) Commit(ctx context.Context) error {
	return f.commit(ctx)
}

// Hierarchy resolves the family a child belongs to.
type Hierarchy[C domain.Movable] interface {
	// ByParent returns the family of the parent with id.
	ByParent(ctx context.Context, parentID int) (*Family[C], error)
	// ByChild returns the family holding the child with id.
	ByChild(ctx context.Context, childID int) (*Family[C], error)
}

// parentHierarchy is a hierarchy whose parent is the root aggregate.
type parentHierarchy[P domain.Record[P], C domain.Movable] struct {
	parents   *MovableService[P]
	childName string
	children  func(P) []C
	assign    func(P, []C)
}

func (h *parentHierarchy[P, C]) ByParent(ctx context.Context, parentID int) (*Family[C], error) {
	parent, err := h.parents.Get(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return h.family(parent), nil
}

func (h *parentHierarchy[P, C]) ByChild(ctx context.Context, childID int) (*Family[C], error) {
	parents, err := h.parents.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, parent := range parents {
		for _, child := range h.children(parent) {
			if child.GetID() == childID {
				return h.family(parent), nil
			}
		}
	}
	return nil, pkgerrors.NotFoundf("%s %d not found", h.childName, childID)
}

func (h *parentHierarchy[P, C]) family(parent P) *Family[C] {
	return &Family[C]{
		ParentID: parent.GetID(),
		children: h.children(parent),
		assign:   func(children []C) { h.assign(parent, children) },
		commit:   func(ctx context.Context) error { return h.parents.save(ctx, parent) },
	}
}

// NewSongHierarchy resolves songs through their music.
func NewSongHierarchy(music *MovableService[*domain.Music]) Hierarchy[*domain.Song] {
	return &parentHierarchy[*domain.Music, *domain.Song]{
		parents:   music,
		childName: "song",
		children:  func(m *domain.Music) []*domain.Song { return m.Songs },
		assign:    func(m *domain.Music, songs []*domain.Song) { m.Songs = songs },
	}
}

// NewSeasonHierarchy resolves seasons through their show.
func NewSeasonHierarchy(shows *MovableService[*domain.Show]) Hierarchy[*domain.Season] {
	return &parentHierarchy[*domain.Show, *domain.Season]{
		parents:   shows,
		childName: "season",
		children:  func(s *domain.Show) []*domain.Season { return s.Seasons },
		assign:    func(s *domain.Show, seasons []*domain.Season) { s.Seasons = seasons },
	}
}

// NewCheatHierarchy resolves the cheat of a game. A game holds at most one
// cheat, assigning several keeps the last.
func NewCheatHierarchy(games *MovableService[*domain.Game]) Hierarchy[*domain.Cheat] {
	return &parentHierarchy[*domain.Game, *domain.Cheat]{
		parents:   games,
		childName: "cheat",
		children: func(g *domain.Game) []*domain.Cheat {
			if g.Cheat == nil {
				return nil
			}
			return []*domain.Cheat{g.Cheat}
		},
		assign: func(g *domain.Game, cheats []*domain.Cheat) {
			if len(cheats) == 0 {
				g.Cheat = nil
				return
			}
			g.Cheat = cheats[len(cheats)-1]
		},
	}
}

// episodeHierarchy resolves episodes through their season. The root aggregate is the show.
type episodeHierarchy struct {
	shows *MovableService[*domain.Show]
}

// NewEpisodeHierarchy resolves episodes through their season and show.
func NewEpisodeHierarchy(shows *MovableService[*domain.Show]) Hierarchy[*domain.Episode] {
	return &episodeHierarchy{shows: shows}
}

func (h *episodeHierarchy) ByParent(ctx context.Context, seasonID int) (*Family[*domain.Episode], error) {
	return h.find(ctx, func(season *domain.Season) bool { return season.ID == seasonID },
		pkgerrors.NotFoundf("season %d not found", seasonID))
}

func (h *episodeHierarchy) ByChild(ctx context.Context, episodeID int) (*Family[*domain.Episode], error) {
	return h.find(ctx, func(season *domain.Season) bool {
		for _, episode := range season.Episodes {
			if episode.ID == episodeID {
				return true
			}
		}
		return false
	}, pkgerrors.NotFoundf("episode %d not found", episodeID))
}

func (h *episodeHierarchy) find(ctx context.Context, match func(*domain.Season) bool, notFound error) (*Family[*domain.Episode], error) {
	shows, err := h.shows.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, show := range shows {
		for _, season := range show.Seasons {
			if !match(season) {
				continue
			}
			return &Family[*domain.Episode]{
				ParentID: season.ID,
				children: season.Episodes,
				assign:   func(episodes []*domain.Episode) { season.Episodes = episodes },
				commit:   func(ctx context.Context) error { return h.shows.save(ctx, show) },
			}, nil
		}
	}
	return nil, notFound
}
