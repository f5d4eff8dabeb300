package validator

import (
	"context"
	"time"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
	"github.com/narwhalmedia/catalog/pkg/result"
)

const (
	// MinYear is the earliest accepted year.
	MinYear = 1930
	// MaxImdbCode is the highest accepted IMDB code, -1 means no code.
	MaxImdbCode = 9999999
)

// currentYear is replaced in tests.
var currentYear = func() int { return time.Now().Year() }

// NewGenreValidator validates genres.
func NewGenreValidator(source Source[*domain.Genre]) *MovableValidator[*entity.Genre, *domain.Genre] {
	return NewMovableValidator("Genre", "GENRE", source,
		func(ctx context.Context, genre *entity.Genre, r *result.Result[result.Void]) error {
			text(r, genre.Name, "GENRE_NAME", "Name")
			return nil
		})
}

// NewPictureValidator validates pictures.
func NewPictureValidator(source Source[*domain.Picture]) *MovableValidator[*entity.Picture, *domain.Picture] {
	return NewMovableValidator("Picture", "PICTURE", source,
		func(ctx context.Context, picture *entity.Picture, r *result.Result[result.Void]) error {
			check(r, picture.Content != nil, "PICTURE_CONTENT_NULL", "Content mustn't be null.")
			return nil
		})
}

// NewMovieValidator validates movies and the genres and picture they reference.
func NewMovieValidator(
	source Source[*domain.Movie],
	genres Validator[*entity.Genre],
	pictures Validator[*entity.Picture],
) *MovableValidator[*entity.Movie, *domain.Movie] {
	return NewMovableValidator("Movie", "MOVIE", source,
		func(ctx context.Context, movie *entity.Movie, r *result.Result[result.Void]) error {
			text(r, movie.CzechName, "MOVIE_CZECH_NAME", "Czech name")
			text(r, movie.OriginalName, "MOVIE_ORIGINAL_NAME", "Original name")
			check(r, validYear(movie.Year), "MOVIE_YEAR_NOT_VALID",
				"Year must be between 1930 and current year.")
			check(r, movie.Language != nil, "MOVIE_LANGUAGE_NULL", "Language mustn't be null.")
			check(r, !containsNil(movie.Subtitles), "MOVIE_SUBTITLES_CONTAIN_NULL",
				"Subtitles mustn't contain null value.")
			if containsNil(movie.Media) {
				r.AddEvent(result.ErrorEvent("MOVIE_MEDIA_CONTAIN_NULL", "Media mustn't contain null value."))
			} else {
				for _, medium := range movie.Media {
					check(r, medium.Number > 0, "MEDIUM_NUMBER_NOT_POSITIVE",
						"Number of medium must be positive number.")
					check(r, medium.Length >= 0, "MEDIUM_LENGTH_NEGATIVE",
						"Length of medium mustn't be negative number.")
				}
			}
			check(r, validImdbCode(movie.ImdbCode), "MOVIE_IMDB_CODE_NOT_VALID",
				"IMDB code must be between 1 and 9999999 or -1.")
			if err := validateGenres(ctx, r, "MOVIE", movie.Genres, genres); err != nil {
				return err
			}
			return validatePicture(ctx, r, movie.Picture, pictures)
		})
}

// NewShowValidator validates shows and the genres and picture they reference.
func NewShowValidator(
	source Source[*domain.Show],
	genres Validator[*entity.Genre],
	pictures Validator[*entity.Picture],
) *MovableValidator[*entity.Show, *domain.Show] {
	return NewMovableValidator("Show", "SHOW", source,
		func(ctx context.Context, show *entity.Show, r *result.Result[result.Void]) error {
			text(r, show.CzechName, "SHOW_CZECH_NAME", "Czech name")
			text(r, show.OriginalName, "SHOW_ORIGINAL_NAME", "Original name")
			check(r, validImdbCode(show.ImdbCode), "SHOW_IMDB_CODE_NOT_VALID",
				"IMDB code must be between 1 and 9999999 or -1.")
			if err := validateGenres(ctx, r, "SHOW", show.Genres, genres); err != nil {
				return err
			}
			return validatePicture(ctx, r, show.Picture, pictures)
		})
}

// NewSeasonValidator validates seasons.
func NewSeasonValidator(source Source[*domain.Season]) *MovableValidator[*entity.Season, *domain.Season] {
	return NewMovableValidator("Season", "SEASON", source,
		func(ctx context.Context, season *entity.Season, r *result.Result[result.Void]) error {
			check(r, season.Number > 0, "SEASON_NUMBER_NOT_POSITIVE",
				"Number of season must be positive number.")
			check(r, validYear(season.StartYear), "SEASON_START_YEAR_NOT_VALID",
				"Starting year must be between 1930 and current year.")
			check(r, validYear(season.EndYear), "SEASON_END_YEAR_NOT_VALID",
				"Ending year must be between 1930 and current year.")
			check(r, season.StartYear <= season.EndYear, "SEASON_YEARS_NOT_VALID",
				"Starting year mustn't be greater than ending year.")
			check(r, season.Language != nil, "SEASON_LANGUAGE_NULL", "Language mustn't be null.")
			check(r, !containsNil(season.Subtitles), "SEASON_SUBTITLES_CONTAIN_NULL",
				"Subtitles mustn't contain null value.")
			return nil
		})
}

// NewEpisodeValidator validates episodes.
func NewEpisodeValidator(source Source[*domain.Episode]) *MovableValidator[*entity.Episode, *domain.Episode] {
	return NewMovableValidator("Episode", "EPISODE", source,
		func(ctx context.Context, episode *entity.Episode, r *result.Result[result.Void]) error {
			check(r, episode.Number > 0, "EPISODE_NUMBER_NOT_POSITIVE",
				"Number of episode must be positive number.")
			text(r, episode.Name, "EPISODE_NAME", "Name")
			check(r, episode.Length >= 0, "EPISODE_LENGTH_NEGATIVE",
				"Length of episode mustn't be negative number.")
			return nil
		})
}

// NewGameValidator validates games.
func NewGameValidator(source Source[*domain.Game]) *MovableValidator[*entity.Game, *domain.Game] {
	return NewMovableValidator("Game", "GAME", source,
		func(ctx context.Context, game *entity.Game, r *result.Result[result.Void]) error {
			text(r, game.Name, "GAME_NAME", "Name")
			check(r, game.MediaCount > 0, "GAME_MEDIA_COUNT_NOT_POSITIVE",
				"Count of media must be positive number.")
			return nil
		})
}

// NewCheatValidator validates cheats and their data.
func NewCheatValidator(source Source[*domain.Cheat]) *MovableValidator[*entity.Cheat, *domain.Cheat] {
	return NewMovableValidator("Cheat", "CHEAT", source,
		func(ctx context.Context, cheat *entity.Cheat, r *result.Result[result.Void]) error {
			if containsNil(cheat.Data) {
				r.AddEvent(result.ErrorEvent("CHEAT_DATA_CONTAIN_NULL", "Cheat's data mustn't contain null value."))
				return nil
			}
			for _, data := range cheat.Data {
				text(r, data.Action, "CHEAT_DATA_ACTION", "Action")
				text(r, data.Description, "CHEAT_DATA_DESCRIPTION", "Description")
			}
			return nil
		})
}

// NewMusicValidator validates music.
func NewMusicValidator(source Source[*domain.Music]) *MovableValidator[*entity.Music, *domain.Music] {
	return NewMovableValidator("Music", "MUSIC", source,
		func(ctx context.Context, music *entity.Music, r *result.Result[result.Void]) error {
			text(r, music.Name, "MUSIC_NAME", "Name")
			check(r, music.MediaCount > 0, "MUSIC_MEDIA_COUNT_NOT_POSITIVE",
				"Count of media must be positive number.")
			return nil
		})
}

// NewSongValidator validates songs.
func NewSongValidator(source Source[*domain.Song]) *MovableValidator[*entity.Song, *domain.Song] {
	return NewMovableValidator("Song", "SONG", source,
		func(ctx context.Context, song *entity.Song, r *result.Result[result.Void]) error {
			text(r, song.Name, "SONG_NAME", "Name")
			check(r, song.Length >= 0, "SONG_LENGTH_NEGATIVE",
				"Length of song mustn't be negative number.")
			return nil
		})
}

// NewProgramValidator validates programs.
func NewProgramValidator(source Source[*domain.Program]) *MovableValidator[*entity.Program, *domain.Program] {
	return NewMovableValidator("Program", "PROGRAM", source,
		func(ctx context.Context, program *entity.Program, r *result.Result[result.Void]) error {
			text(r, program.Name, "PROGRAM_NAME", "Name")
			check(r, program.MediaCount > 0, "PROGRAM_MEDIA_COUNT_NOT_POSITIVE",
				"Count of media must be positive number.")
			return nil
		})
}

func validYear(year int) bool {
	return year >= MinYear && year <= currentYear()
}

func validImdbCode(code int) bool {
	return code == -1 || (code >= 1 && code <= MaxImdbCode)
}

func validateGenres(ctx context.Context, r *result.Result[result.Void], prefix string, genres []*entity.Genre, validator Validator[*entity.Genre]) error {
	if containsNil(genres) {
		r.AddEvent(result.ErrorEvent(prefix+"_GENRES_CONTAIN_NULL", "Genres mustn't contain null value."))
		return nil
	}
	for _, genre := range genres {
		genreResult, err := validator.Validate(ctx, genre, TypeExists)
		if err != nil {
			return err
		}
		r.AddEvents(genreResult.Events...)
	}
	return nil
}

func validatePicture(ctx context.Context, r *result.Result[result.Void], picture *int, validator Validator[*entity.Picture]) error {
	if picture == nil {
		return nil
	}
	pictureResult, err := validator.Validate(ctx, &entity.Picture{Item: entity.Item{ID: picture}}, TypeExists)
	if err != nil {
		return err
	}
	r.AddEvents(pictureResult.Events...)
	return nil
}
