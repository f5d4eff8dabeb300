package entity

// Movie is a film.
type Movie struct {
	Item
	CzechName    *string     `json:"czechName"`
	OriginalName *string     `json:"originalName"`
	Year         int         `json:"year"`
	Language     *Language   `json:"language"`
	Subtitles    []*Language `json:"subtitles"`
	Media        []*Medium   `json:"media"`
	Csfd         string      `json:"csfd"`
	ImdbCode     int         `json:"imdbCode"`
	WikiEn       string      `json:"wikiEn"`
	WikiCz       string      `json:"wikiCz"`
	Picture      *int        `json:"picture,omitempty"`
	Note         string      `json:"note"`
	Genres       []*Genre    `json:"genres"`
}

// Medium is one physical medium of a movie. Length is in seconds.
type Medium struct {
	ID     *int `json:"id,omitempty"`
	Number int  `json:"number"`
	Length int  `json:"length"`
}

// Show is a TV show. Its seasons are managed through the season operations.
type Show struct {
	Item
	CzechName    *string  `json:"czechName"`
	OriginalName *string  `json:"originalName"`
	Csfd         string   `json:"csfd"`
	ImdbCode     int      `json:"imdbCode"`
	WikiEn       string   `json:"wikiEn"`
	WikiCz       string   `json:"wikiCz"`
	Picture      *int     `json:"picture,omitempty"`
	Note         string   `json:"note"`
	Genres       []*Genre `json:"genres"`
}

// Season is one season of a show.
type Season struct {
	Item
	Number    int         `json:"number"`
	StartYear int         `json:"startYear"`
	EndYear   int         `json:"endYear"`
	Language  *Language   `json:"language"`
	Subtitles []*Language `json:"subtitles"`
	Note      string      `json:"note"`
}

// Episode is one episode of a season. Length is in seconds.
type Episode struct {
	Item
	Number int     `json:"number"`
	Name   *string `json:"name"`
	Length int     `json:"length"`
	Note   string  `json:"note"`
}

// Game is a computer game. Its cheat is managed through the cheat operations.
type Game struct {
	Item
	Name        *string `json:"name"`
	WikiEn      string  `json:"wikiEn"`
	WikiCz      string  `json:"wikiCz"`
	MediaCount  int     `json:"mediaCount"`
	Crack       bool    `json:"crack"`
	SerialKey   bool    `json:"serialKey"`
	Patch       bool    `json:"patch"`
	Trainer     bool    `json:"trainer"`
	TrainerData bool    `json:"trainerData"`
	Editor      bool    `json:"editor"`
	Saves       bool    `json:"saves"`
	OtherData   string  `json:"otherData"`
	Note        string  `json:"note"`
}

// Cheat holds the cheat codes of a game.
type Cheat struct {
	Item
	GameSetting  string       `json:"gameSetting"`
	CheatSetting string       `json:"cheatSetting"`
	Data         []*CheatData `json:"data"`
}

// CheatData is one action and its description.
type CheatData struct {
	ID          *int    `json:"id,omitempty"`
	Action      *string `json:"action"`
	Description *string `json:"description"`
}

// Music is an album. Its songs are managed through the song operations.
type Music struct {
	Item
	Name       *string `json:"name"`
	WikiEn     string  `json:"wikiEn"`
	WikiCz     string  `json:"wikiCz"`
	MediaCount int     `json:"mediaCount"`
	Note       string  `json:"note"`
}

// Song is one song of a music. Length is in seconds.
type Song struct {
	Item
	Name   *string `json:"name"`
	Length int     `json:"length"`
	Note   string  `json:"note"`
}

// Program is a software program.
type Program struct {
	Item
	Name       *string `json:"name"`
	WikiEn     string  `json:"wikiEn"`
	WikiCz     string  `json:"wikiCz"`
	MediaCount int     `json:"mediaCount"`
	Crack      bool    `json:"crack"`
	SerialKey  bool    `json:"serialKey"`
	OtherData  string  `json:"otherData"`
	Note       string  `json:"note"`
}

// Genre classifies movies and shows.
type Genre struct {
	Item
	Name *string `json:"name"`
}

// Picture is an image referenced by movies and shows.
type Picture struct {
	Item
	Content []byte `json:"content"`
}
