package testutil

import (
	"fmt"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

// CreateTestGenre creates an unsaved genre.
func CreateTestGenre(name string) *domain.Genre {
	return &domain.Genre{Name: name}
}

// CreateTestMovie creates an unsaved movie with the given number of media.
func CreateTestMovie(name string, media int, genres ...*domain.Genre) *domain.Movie {
	movie := &domain.Movie{
		CzechName:    name,
		OriginalName: name,
		Year:         2000,
		Language:     domain.LanguageEN,
		Subtitles:    []domain.Language{domain.LanguageCZ},
		Csfd:         "Csfd",
		ImdbCode:     1000,
		WikiEn:       "enwiki",
		WikiCz:       "czwiki",
		Note:         "Note",
		Genres:       genres,
	}
	for i := 0; i < media; i++ {
		movie.Media = append(movie.Media, &domain.Medium{
			Item:   domain.Item{Position: i},
			Number: i + 1,
			Length: 100 * (i + 1),
		})
	}
	return movie
}

// CreateTestShow creates an unsaved show with seasons each holding episodes.
func CreateTestShow(name string, seasons, episodes int) *domain.Show {
	show := &domain.Show{
		CzechName:    name,
		OriginalName: name,
		ImdbCode:     -1,
	}
	for s := 0; s < seasons; s++ {
		show.Seasons = append(show.Seasons, CreateTestSeason(s+1, episodes))
		show.Seasons[s].Position = s
	}
	return show
}

// CreateTestSeason creates an unsaved season with episodes.
func CreateTestSeason(number, episodes int) *domain.Season {
	season := &domain.Season{
		Number:    number,
		StartYear: 2000,
		EndYear:   2001,
		Language:  domain.LanguageCZ,
		Subtitles: []domain.Language{domain.LanguageEN},
	}
	for e := 0; e < episodes; e++ {
		season.Episodes = append(season.Episodes, CreateTestEpisode(e+1))
		season.Episodes[e].Position = e
	}
	return season
}

// CreateTestEpisode creates an unsaved episode.
func CreateTestEpisode(number int) *domain.Episode {
	return &domain.Episode{
		Number: number,
		Name:   fmt.Sprintf("Episode %d", number),
		Length: 60 * number,
	}
}

// CreateTestGame creates an unsaved game, with a cheat of the given data size when cheatData >= 0.
func CreateTestGame(name string, cheatData int) *domain.Game {
	game := &domain.Game{
		Name:       name,
		MediaCount: 1,
		Crack:      true,
	}
	if cheatData >= 0 {
		game.Cheat = CreateTestCheat(cheatData)
	}
	return game
}

// CreateTestCheat creates an unsaved cheat.
func CreateTestCheat(data int) *domain.Cheat {
	cheat := &domain.Cheat{GameSetting: "game", CheatSetting: "cheat"}
	for i := 0; i < data; i++ {
		cheat.Data = append(cheat.Data, &domain.CheatData{
			Item:        domain.Item{Position: i},
			Action:      fmt.Sprintf("Action %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
		})
	}
	return cheat
}

// CreateTestMusic creates an unsaved music with songs.
func CreateTestMusic(name string, songs int) *domain.Music {
	music := &domain.Music{Name: name, MediaCount: 1}
	for i := 0; i < songs; i++ {
		music.Songs = append(music.Songs, CreateTestSong(fmt.Sprintf("Song %d", i+1)))
		music.Songs[i].Position = i
	}
	return music
}

// CreateTestSong creates an unsaved song.
func CreateTestSong(name string) *domain.Song {
	return &domain.Song{Name: name, Length: 180}
}

// CreateTestProgram creates an unsaved program.
func CreateTestProgram(name string) *domain.Program {
	return &domain.Program{Name: name, MediaCount: 2, SerialKey: true}
}

// CreateTestPicture creates an unsaved picture.
func CreateTestPicture(content string) *domain.Picture {
	return &domain.Picture{Content: []byte(content)}
}
