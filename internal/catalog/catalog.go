// Package catalog assembles the catalog facades over one database.
package catalog

import (
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/facade"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
	"github.com/narwhalmedia/catalog/internal/catalog/validator"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Options tunes the assembled catalog.
type Options struct {
	// CacheTTL is how long ordered lists stay cached, service.DefaultCacheTTL when zero.
	CacheTTL time.Duration
	// Blobs keeps picture content outside the database when set.
	Blobs interfaces.BlobStore
}

// Catalog holds every facade of the catalog.
type Catalog struct {
	Movies   *facade.MovieFacade
	Shows    *facade.ShowFacade
	Seasons  *facade.SeasonFacade
	Episodes *facade.EpisodeFacade
	Games    *facade.GameFacade
	Cheats   *facade.CheatFacade
	Music    *facade.MusicFacade
	Songs    *facade.SongFacade
	Programs *facade.ProgramFacade
	Genres   *facade.GenreFacade
	Pictures *facade.PictureFacade
}

// New wires repositories, services, validators and facades.
func New(db *gorm.DB, cache interfaces.Cache, eventBus interfaces.EventBus, logger interfaces.Logger, opts Options) *Catalog {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = service.DefaultCacheTTL
	}

	var pictureRepo interfaces.Repository[*domain.Picture] = repository.NewPictureRepository(db, opts.Blobs)

	movies := service.NewMovableService[*domain.Movie]("movie", repository.NewMovieRepository(db), eventBus, cache, logger).WithCacheTTL(ttl)
	shows := service.NewMovableService[*domain.Show]("show", repository.NewShowRepository(db), eventBus, cache, logger).WithCacheTTL(ttl)
	games := service.NewMovableService[*domain.Game]("game", repository.NewGameRepository(db), eventBus, cache, logger).WithCacheTTL(ttl)
	music := service.NewMovableService[*domain.Music]("music", repository.NewMusicRepository(db), eventBus, cache, logger).WithCacheTTL(ttl)
	programs := service.NewMovableService[*domain.Program]("program", repository.NewProgramRepository(db), eventBus, cache, logger).WithCacheTTL(ttl)
	genres := service.NewMovableService[*domain.Genre]("genre", repository.NewGenreRepository(db), eventBus, cache, logger).WithCacheTTL(ttl).WithDependents("movie", "show")
	pictures := service.NewMovableService[*domain.Picture]("picture", pictureRepo, eventBus, cache, logger).WithCacheTTL(ttl).WithDependents("movie", "show")

	seasons := service.NewChildService("season", service.NewSeasonHierarchy(shows), eventBus, logger)
	episodes := service.NewChildService("episode", service.NewEpisodeHierarchy(shows), eventBus, logger)
	cheats := service.NewChildService("cheat", service.NewCheatHierarchy(games), eventBus, logger)
	songs := service.NewChildService("song", service.NewSongHierarchy(music), eventBus, logger)

	genreValidator := validator.NewGenreValidator(genres)
	pictureValidator := validator.NewPictureValidator(pictures)
	showValidator := validator.NewShowValidator(shows, genreValidator, pictureValidator)
	seasonValidator := validator.NewSeasonValidator(seasons)
	gameValidator := validator.NewGameValidator(games)
	musicValidator := validator.NewMusicValidator(music)

	return &Catalog{
		Movies:   facade.NewMovieFacade(movies, validator.NewMovieValidator(movies, genreValidator, pictureValidator)),
		Shows:    facade.NewShowFacade(shows, showValidator),
		Seasons:  facade.NewSeasonFacade(seasons, showValidator, seasonValidator),
		Episodes: facade.NewEpisodeFacade(episodes, seasonValidator, validator.NewEpisodeValidator(episodes)),
		Games:    facade.NewGameFacade(games, gameValidator),
		Cheats:   facade.NewCheatFacade(cheats, gameValidator, validator.NewCheatValidator(cheats)),
		Music:    facade.NewMusicFacade(music, musicValidator),
		Songs:    facade.NewSongFacade(songs, musicValidator, validator.NewSongValidator(songs)),
		Programs: facade.NewProgramFacade(programs, validator.NewProgramValidator(programs)),
		Genres:   facade.NewGenreFacade(genres, genreValidator),
		Pictures: facade.NewPictureFacade(pictures, pictureValidator),
	}
}
