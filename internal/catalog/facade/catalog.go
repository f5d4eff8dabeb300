package facade

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
	"github.com/narwhalmedia/catalog/internal/catalog/mapper"
	"github.com/narwhalmedia/catalog/internal/catalog/validator"
	"github.com/narwhalmedia/catalog/pkg/result"
)

type (
	GenreFacade   = ParentFacade[*entity.Genre, *domain.Genre]
	PictureFacade = ParentFacade[*entity.Picture, *domain.Picture]
	SongFacade    = ChildFacade[*entity.Music, *entity.Song, *domain.Song]
	SeasonFacade  = ChildFacade[*entity.Show, *entity.Season, *domain.Season]
	EpisodeFacade = ChildFacade[*entity.Season, *entity.Episode, *domain.Episode]
)

// NewGenreFacade creates the genre facade.
func NewGenreFacade(service ParentService[*domain.Genre], v validator.Validator[*entity.Genre]) *GenreFacade {
	return NewParentFacade(service, v, mapper.Genre, nil)
}

// NewPictureFacade creates the picture facade. Updates keep the stored blob key.
func NewPictureFacade(service ParentService[*domain.Picture], v validator.Validator[*entity.Picture]) *PictureFacade {
	return NewParentFacade(service, v, mapper.Picture, func(stored, updated *domain.Picture) {
		updated.StorageKey = stored.StorageKey
	})
}

// MovieFacade exposes movies and their statistics.
type MovieFacade struct {
	*ParentFacade[*entity.Movie, *domain.Movie]
	service ParentService[*domain.Movie]
}

// NewMovieFacade creates the movie facade.
func NewMovieFacade(service ParentService[*domain.Movie], v validator.Validator[*entity.Movie]) *MovieFacade {
	return &MovieFacade{ParentFacade: NewParentFacade(service, v, mapper.Movie, nil), service: service}
}

// TotalMediaCount returns the number of media of all movies.
func (f *MovieFacade) TotalMediaCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(m *domain.Movie) int { return len(m.Media) })
}

// TotalLength returns the length of all movies in seconds.
func (f *MovieFacade) TotalLength(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, (*domain.Movie).Length)
}

// ShowFacade exposes shows and their statistics.
type ShowFacade struct {
	*ParentFacade[*entity.Show, *domain.Show]
	service ParentService[*domain.Show]
}

// NewShowFacade creates the show facade. Updates keep the stored seasons.
func NewShowFacade(service ParentService[*domain.Show], v validator.Validator[*entity.Show]) *ShowFacade {
	return &ShowFacade{
		ParentFacade: NewParentFacade(service, v, mapper.Show, func(stored, updated *domain.Show) {
			updated.Seasons = stored.Seasons
		}),
		service: service,
	}
}

// TotalLength returns the length of all episodes in seconds.
func (f *ShowFacade) TotalLength(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, (*domain.Show).Length)
}

// SeasonsCount returns the number of seasons of all shows.
func (f *ShowFacade) SeasonsCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(s *domain.Show) int { return len(s.Seasons) })
}

// EpisodesCount returns the number of episodes of all shows.
func (f *ShowFacade) EpisodesCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, (*domain.Show).EpisodesCount)
}

// GameFacade exposes games and their statistics.
type GameFacade struct {
	*ParentFacade[*entity.Game, *domain.Game]
	service ParentService[*domain.Game]
}

// NewGameFacade creates the game facade. Updates keep the stored cheat.
func NewGameFacade(service ParentService[*domain.Game], v validator.Validator[*entity.Game]) *GameFacade {
	return &GameFacade{
		ParentFacade: NewParentFacade(service, v, mapper.Game, func(stored, updated *domain.Game) {
			updated.Cheat = stored.Cheat
		}),
		service: service,
	}
}

// TotalMediaCount returns the count of media of all games.
func (f *GameFacade) TotalMediaCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(g *domain.Game) int { return g.MediaCount })
}

// MusicFacade exposes music and its statistics.
type MusicFacade struct {
	*ParentFacade[*entity.Music, *domain.Music]
	service ParentService[*domain.Music]
}

// NewMusicFacade creates the music facade. Updates keep the stored songs.
func NewMusicFacade(service ParentService[*domain.Music], v validator.Validator[*entity.Music]) *MusicFacade {
	return &MusicFacade{
		ParentFacade: NewParentFacade(service, v, mapper.Music, func(stored, updated *domain.Music) {
			updated.Songs = stored.Songs
		}),
		service: service,
	}
}

// TotalMediaCount returns the count of media of all music.
func (f *MusicFacade) TotalMediaCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(m *domain.Music) int { return m.MediaCount })
}

// TotalLength returns the length of all songs in seconds.
func (f *MusicFacade) TotalLength(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, (*domain.Music).Length)
}

// SongsCount returns the number of songs of all music.
func (f *MusicFacade) SongsCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(m *domain.Music) int { return len(m.Songs) })
}

// ProgramFacade exposes programs and their statistics.
type ProgramFacade struct {
	*ParentFacade[*entity.Program, *domain.Program]
	service ParentService[*domain.Program]
}

// NewProgramFacade creates the program facade.
func NewProgramFacade(service ParentService[*domain.Program], v validator.Validator[*entity.Program]) *ProgramFacade {
	return &ProgramFacade{ParentFacade: NewParentFacade(service, v, mapper.Program, nil), service: service}
}

// TotalMediaCount returns the count of media of all programs.
func (f *ProgramFacade) TotalMediaCount(ctx context.Context) (*result.Result[int], error) {
	return sum(ctx, f.service, func(p *domain.Program) int { return p.MediaCount })
}

// NewSongFacade creates the song facade.
func NewSongFacade(service ChildService[*domain.Song], music validator.Validator[*entity.Music], v validator.Validator[*entity.Song]) *SongFacade {
	return NewChildFacade(service, music, v, mapper.Song, nil)
}

// NewSeasonFacade creates the season facade. Updates keep the stored episodes.
func NewSeasonFacade(service ChildService[*domain.Season], shows validator.Validator[*entity.Show], v validator.Validator[*entity.Season]) *SeasonFacade {
	return NewChildFacade(service, shows, v, mapper.Season, func(stored, updated *domain.Season) {
		updated.ShowID = stored.ShowID
		updated.Episodes = stored.Episodes
	})
}

// NewEpisodeFacade creates the episode facade.
func NewEpisodeFacade(service ChildService[*domain.Episode], seasons validator.Validator[*entity.Season], v validator.Validator[*entity.Episode]) *EpisodeFacade {
	return NewChildFacade(service, seasons, v, mapper.Episode, func(stored, updated *domain.Episode) {
		updated.SeasonID = stored.SeasonID
	})
}

// CheatFacade exposes the cheat of games. Cheats can be neither moved nor duplicated
// and a game holds at most one.
type CheatFacade struct {
	*ChildFacade[*entity.Game, *entity.Cheat, *domain.Cheat]
}

// NewCheatFacade creates the cheat facade.
func NewCheatFacade(service ChildService[*domain.Cheat], games validator.Validator[*entity.Game], v validator.Validator[*entity.Cheat]) *CheatFacade {
	child := NewChildFacade(service, games, v, mapper.Cheat, func(stored, updated *domain.Cheat) {
		updated.GameID = stored.GameID
	})
	child.WithAddGuard(func(ctx context.Context, gameID int) (*result.Result[result.Void], error) {
		cheats, err := service.Find(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if len(cheats) > 0 {
			return result.Error[result.Void]("GAME_CHEAT_EXIST", "Game already has cheat."), nil
		}
		return result.New[result.Void](), nil
	})
	return &CheatFacade{ChildFacade: child}
}

// Duplicate always fails, cheats can't be duplicated.
func (f *CheatFacade) Duplicate(ctx context.Context, data *entity.Cheat) (*result.Result[result.Void], error) {
	return result.Error[result.Void]("CHEAT_NOT_DUPLICABLE", "Cheat can't be duplicated."), nil
}

// MoveUp always fails, cheats can't be moved.
func (f *CheatFacade) MoveUp(ctx context.Context, data *entity.Cheat) (*result.Result[result.Void], error) {
	return result.Error[result.Void]("CHEAT_NOT_MOVABLE", "Cheat can't be moved up."), nil
}

// MoveDown always fails, cheats can't be moved.
func (f *CheatFacade) MoveDown(ctx context.Context, data *entity.Cheat) (*result.Result[result.Void], error) {
	return result.Error[result.Void]("CHEAT_NOT_MOVABLE", "Cheat can't be moved down."), nil
}

func sum[D domain.Record[D]](ctx context.Context, service ParentService[D], value func(D) int) (*result.Result[int], error) {
	items, err := service.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, item := range items {
		total += value(item)
	}
	return result.Of(total), nil
}
