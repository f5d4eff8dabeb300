package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

func genresPreload() repository.Scope {
	return repository.Preload("Genres", "genres.position, genres.id")
}

// NewMovieRepository stores movies with their media and genre references.
func NewMovieRepository(db *gorm.DB) *GormRepository[domain.Movie, *domain.Movie] {
	return NewGormRepository[domain.Movie](db, Schema[*domain.Movie]{
		Name:     "movie",
		Preloads: []repository.Scope{repository.Preload("Media", positionOrder), genresPreload()},
		Prune: func(ctx context.Context, tx *gorm.DB, movie *domain.Movie) error {
			_, err := repository.PruneChildren[domain.Medium](ctx, tx, "movie_id", movie.ID, ids(movie.Media))
			return err
		},
		Children: func(ctx context.Context, tx *gorm.DB, movie *domain.Movie) error {
			for _, medium := range movie.Media {
				medium.MovieID = movie.ID
				if err := repository.Save(ctx, tx, medium); err != nil {
					return err
				}
			}
			return saveGenres(tx, movie, movie.Genres)
		},
		Cascade: func(ctx context.Context, tx *gorm.DB, movies []int) error {
			if err := repository.DeleteWhereIn[domain.Medium](ctx, tx, "movie_id", movies); err != nil {
				return err
			}
			return tx.Exec("DELETE FROM movie_genres WHERE movie_id IN ?", movies).Error
		},
	})
}

// NewShowRepository stores shows with their seasons, episodes and genre references.
func NewShowRepository(db *gorm.DB) *GormRepository[domain.Show, *domain.Show] {
	return NewGormRepository[domain.Show](db, Schema[*domain.Show]{
		Name: "show",
		Preloads: []repository.Scope{
			repository.Preload("Seasons", positionOrder),
			repository.Preload("Seasons.Episodes", positionOrder),
			genresPreload(),
		},
		Prune: func(ctx context.Context, tx *gorm.DB, show *domain.Show) error {
			stale, err := repository.StaleIDs[domain.Season](ctx, tx, "show_id", show.ID, ids(show.Seasons))
			if err != nil {
				return err
			}
			if err := deleteSeasons(ctx, tx, stale); err != nil {
				return err
			}
			for _, season := range show.Seasons {
				if season.ID == 0 {
					continue
				}
				if _, err := repository.PruneChildren[domain.Episode](ctx, tx, "season_id", season.ID, ids(season.Episodes)); err != nil {
					return err
				}
			}
			return nil
		},
		Children: func(ctx context.Context, tx *gorm.DB, show *domain.Show) error {
			for _, season := range show.Seasons {
				season.ShowID = show.ID
				if err := repository.Save(ctx, tx, season); err != nil {
					return err
				}
				for _, episode := range season.Episodes {
					episode.SeasonID = season.ID
					if err := repository.Save(ctx, tx, episode); err != nil {
						return err
					}
				}
			}
			return saveGenres(tx, show, show.Genres)
		},
		Cascade: func(ctx context.Context, tx *gorm.DB, shows []int) error {
			seasons, err := repository.PluckIDs[domain.Season](ctx, tx, "show_id", shows)
			if err != nil {
				return err
			}
			if err := deleteSeasons(ctx, tx, seasons); err != nil {
				return err
			}
			return tx.Exec("DELETE FROM show_genres WHERE show_id IN ?", shows).Error
		},
	})
}

func deleteSeasons(ctx context.Context, tx *gorm.DB, seasons []int) error {
	if err := repository.DeleteWhereIn[domain.Episode](ctx, tx, "season_id", seasons); err != nil {
		return err
	}
	return repository.DeleteWhereIn[domain.Season](ctx, tx, "id", seasons)
}

// NewGameRepository stores games with their cheat and its data.
func NewGameRepository(db *gorm.DB) *GormRepository[domain.Game, *domain.Game] {
	return NewGormRepository[domain.Game](db, Schema[*domain.Game]{
		Name: "game",
		Preloads: []repository.Scope{
			repository.Preload("Cheat", ""),
			repository.Preload("Cheat.Data", positionOrder),
		},
		Prune: func(ctx context.Context, tx *gorm.DB, game *domain.Game) error {
			var keep []int
			if game.Cheat != nil && game.Cheat.ID != 0 {
				keep = []int{game.Cheat.ID}
			}
			stale, err := repository.StaleIDs[domain.Cheat](ctx, tx, "game_id", game.ID, keep)
			if err != nil {
				return err
			}
			if err := deleteCheats(ctx, tx, stale); err != nil {
				return err
			}
			if len(keep) == 0 {
				return nil
			}
			_, err = repository.PruneChildren[domain.CheatData](ctx, tx, "cheat_id", game.Cheat.ID, ids(game.Cheat.Data))
			return err
		},
		Children: func(ctx context.Context, tx *gorm.DB, game *domain.Game) error {
			cheat := game.Cheat
			if cheat == nil {
				return nil
			}
			cheat.GameID = game.ID
			if err := repository.Save(ctx, tx, cheat); err != nil {
				return err
			}
			for _, data := range cheat.Data {
				data.CheatID = cheat.ID
				if err := repository.Save(ctx, tx, data); err != nil {
					return err
				}
			}
			return nil
		},
		Cascade: func(ctx context.Context, tx *gorm.DB, games []int) error {
			cheats, err := repository.PluckIDs[domain.Cheat](ctx, tx, "game_id", games)
			if err != nil {
				return err
			}
			return deleteCheats(ctx, tx, cheats)
		},
	})
}

func deleteCheats(ctx context.Context, tx *gorm.DB, cheats []int) error {
	if err := repository.DeleteWhereIn[domain.CheatData](ctx, tx, "cheat_id", cheats); err != nil {
		return err
	}
	return repository.DeleteWhereIn[domain.Cheat](ctx, tx, "id", cheats)
}

// NewMusicRepository stores music with their songs.
func NewMusicRepository(db *gorm.DB) *GormRepository[domain.Music, *domain.Music] {
	return NewGormRepository[domain.Music](db, Schema[*domain.Music]{
		Name:     "music",
		Preloads: []repository.Scope{repository.Preload("Songs", positionOrder)},
		Prune: func(ctx context.Context, tx *gorm.DB, music *domain.Music) error {
			_, err := repository.PruneChildren[domain.Song](ctx, tx, "music_id", music.ID, ids(music.Songs))
			return err
		},
		Children: func(ctx context.Context, tx *gorm.DB, music *domain.Music) error {
			for _, song := range music.Songs {
				song.MusicID = music.ID
				if err := repository.Save(ctx, tx, song); err != nil {
					return err
				}
			}
			return nil
		},
		Cascade: func(ctx context.Context, tx *gorm.DB, music []int) error {
			return repository.DeleteWhereIn[domain.Song](ctx, tx, "music_id", music)
		},
	})
}

// NewProgramRepository stores programs.
func NewProgramRepository(db *gorm.DB) *GormRepository[domain.Program, *domain.Program] {
	return NewGormRepository[domain.Program](db, Schema[*domain.Program]{Name: "program"})
}

// NewGenreRepository stores genres. Deleting a genre drops its movie and show references.
func NewGenreRepository(db *gorm.DB) *GormRepository[domain.Genre, *domain.Genre] {
	return NewGormRepository[domain.Genre](db, Schema[*domain.Genre]{
		Name: "genre",
		Cascade: func(ctx context.Context, tx *gorm.DB, genres []int) error {
			if err := tx.Exec("DELETE FROM movie_genres WHERE genre_id IN ?", genres).Error; err != nil {
				return err
			}
			return tx.Exec("DELETE FROM show_genres WHERE genre_id IN ?", genres).Error
		},
	})
}

// NewPictureRowRepository stores pictures with their content in the database.
// Deleting a picture clears the movie and show references to it.
func NewPictureRowRepository(db *gorm.DB) *GormRepository[domain.Picture, *domain.Picture] {
	return NewGormRepository[domain.Picture](db, Schema[*domain.Picture]{
		Name: "picture",
		Cascade: func(ctx context.Context, tx *gorm.DB, pictures []int) error {
			if err := tx.Model(&domain.Movie{}).Where("picture IN ?", pictures).Update("picture", nil).Error; err != nil {
				return err
			}
			return tx.Model(&domain.Show{}).Where("picture IN ?", pictures).Update("picture", nil).Error
		},
	})
}
