package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

func intPtr(v int) *int { return &v }

func TestMovie_CloneIsDeep(t *testing.T) {
	movie := &domain.Movie{
		Item:      domain.Item{ID: 1, Position: 3},
		CzechName: "Vetrelec",
		Subtitles: []domain.Language{domain.LanguageCZ},
		Media:     []*domain.Medium{{Item: domain.Item{ID: 10}, MovieID: 1, Number: 1, Length: 7000}},
		Genres:    []*domain.Genre{{Item: domain.Item{ID: 4}, Name: "Sci-fi"}},
		Picture:   intPtr(9),
	}

	clone := movie.Clone()
	clone.Subtitles[0] = domain.LanguageEN
	clone.Media[0].Length = 1
	clone.Genres[0].Name = "Horror"
	*clone.Picture = 11

	assert.Equal(t, domain.LanguageCZ, movie.Subtitles[0])
	assert.Equal(t, 7000, movie.Media[0].Length)
	assert.Equal(t, "Sci-fi", movie.Genres[0].Name)
	assert.Equal(t, 9, *movie.Picture)
	assert.Equal(t, 3, clone.Position)
}

func TestMovie_DetachKeepsReferences(t *testing.T) {
	movie := &domain.Movie{
		Item: domain.Item{ID: 1},
		Media: []*domain.Medium{
			{Item: domain.Item{ID: 11, Position: 5}, MovieID: 1, Number: 2},
			{Item: domain.Item{ID: 10, Position: 2}, MovieID: 1, Number: 1},
		},
		Genres:  []*domain.Genre{{Item: domain.Item{ID: 4}}},
		Picture: intPtr(9),
	}

	movie.Detach()

	assert.Zero(t, movie.ID)
	for i, medium := range movie.Media {
		assert.Zero(t, medium.ID)
		assert.Zero(t, medium.MovieID)
		assert.Equal(t, i, medium.Position)
	}
	assert.Equal(t, 1, movie.Media[0].Number, "media keep their order")
	assert.Equal(t, 4, movie.Genres[0].ID)
	assert.Equal(t, 9, *movie.Picture)
}

func TestShow_DetachAndRenumberNested(t *testing.T) {
	show := &domain.Show{
		Item: domain.Item{ID: 1},
		Seasons: []*domain.Season{
			{
				Item:     domain.Item{ID: 2, Position: 7},
				ShowID:   1,
				Episodes: []*domain.Episode{{Item: domain.Item{ID: 3, Position: 4}, SeasonID: 2, Length: 100}},
			},
			{
				Item:   domain.Item{ID: 5, Position: 1},
				ShowID: 1,
				Episodes: []*domain.Episode{
					{Item: domain.Item{ID: 6, Position: 9}, SeasonID: 5, Length: 50},
					{Item: domain.Item{ID: 7, Position: 8}, SeasonID: 5, Length: 25},
				},
			},
		},
	}

	assert.Equal(t, 175, show.Length())
	assert.Equal(t, 3, show.EpisodesCount())

	show.Renumber()
	assert.Equal(t, 5, show.Seasons[0].ID)
	assert.Equal(t, 0, show.Seasons[0].Position)
	assert.Equal(t, 7, show.Seasons[0].Episodes[0].ID)
	assert.Equal(t, 1, show.Seasons[0].Episodes[1].Position)

	show.Detach()
	assert.Zero(t, show.ID)
	for _, season := range show.Seasons {
		assert.Zero(t, season.ID)
		assert.Zero(t, season.ShowID)
		for _, episode := range season.Episodes {
			assert.Zero(t, episode.ID)
			assert.Zero(t, episode.SeasonID)
		}
	}
}

func TestGame_CloneAndDetachCheat(t *testing.T) {
	game := &domain.Game{
		Item: domain.Item{ID: 1},
		Name: "Doom",
		Cheat: &domain.Cheat{
			Item:   domain.Item{ID: 2},
			GameID: 1,
			Data:   []*domain.CheatData{{Item: domain.Item{ID: 3}, CheatID: 2, Action: "iddqd", Description: "God mode"}},
		},
	}

	clone := game.Clone()
	clone.Cheat.Data[0].Action = "idkfa"
	assert.Equal(t, "iddqd", game.Cheat.Data[0].Action)

	clone.Detach()
	assert.Zero(t, clone.ID)
	assert.Zero(t, clone.Cheat.ID)
	assert.Zero(t, clone.Cheat.GameID)
	assert.Zero(t, clone.Cheat.Data[0].ID)
	assert.Equal(t, 2, game.Cheat.ID)
}

func TestPicture_CloneCopiesContent(t *testing.T) {
	picture := &domain.Picture{Item: domain.Item{ID: 1}, Content: []byte{1, 2}, StorageKey: "k"}

	clone := picture.Clone()
	clone.Content[0] = 9
	clone.Detach()

	assert.Equal(t, byte(1), picture.Content[0])
	assert.Empty(t, clone.StorageKey)
	assert.Equal(t, "k", picture.StorageKey)
}

func TestCompare(t *testing.T) {
	a := &domain.Genre{Item: domain.Item{ID: 2, Position: 1}}
	b := &domain.Genre{Item: domain.Item{ID: 1, Position: 1}}
	c := &domain.Genre{Item: domain.Item{ID: 3, Position: 0}}

	assert.Positive(t, domain.Compare(a, b))
	assert.Negative(t, domain.Compare(c, b))
	assert.Zero(t, domain.Compare(a, a))
}

func TestLanguage_Valid(t *testing.T) {
	assert.True(t, domain.LanguageJP.Valid())
	assert.False(t, domain.Language("DE").Valid())
}
