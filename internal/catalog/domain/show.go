package domain

// Show is a TV show made of seasons.
type Show struct {
	Item
	CzechName    string `gorm:"not null"`
	OriginalName string `gorm:"not null"`
	Csfd         string
	ImdbCode     int
	WikiEn       string
	WikiCz       string
	Picture      *int
	Note         string
	Genres       []*Genre  `gorm:"many2many:show_genres"`
	Seasons      []*Season `gorm:"foreignKey:ShowID"`
}

// TableName overrides the table name.
func (Show) TableName() string { return "shows" }

// Season is one season of a show.
type Season struct {
	Item
	ShowID    int        `gorm:"index;not null"`
	Number    int        `gorm:"not null"`
	StartYear int        `gorm:"not null"`
	EndYear   int        `gorm:"not null"`
	Language  Language   `gorm:"size:2;not null"`
	Subtitles []Language `gorm:"serializer:json"`
	Note      string
	Episodes  []*Episode `gorm:"foreignKey:SeasonID"`
}

// TableName overrides the table name.
func (Season) TableName() string { return "seasons" }

// Episode is one episode of a season.
type Episode struct {
	Item
	SeasonID int    `gorm:"index;not null"`
	Number   int    `gorm:"not null"`
	Name     string `gorm:"not null"`
	// Length in seconds.
	Length int `gorm:"not null"`
	Note   string
}

// TableName overrides the table name.
func (Episode) TableName() string { return "episodes" }

// Clone returns a deep copy of the show.
func (s *Show) Clone() *Show {
	c := *s
	c.Picture = cloneInt(s.Picture)
	c.Genres = cloneSlice(s.Genres)
	c.Seasons = cloneSlice(s.Seasons)
	return &c
}

// Detach clears the identities of the show, its seasons and their episodes.
func (s *Show) Detach() {
	s.ID = 0
	for _, season := range s.Seasons {
		season.Detach()
	}
	renumber(s.Seasons)
}

// Renumber renumbers seasons and their episodes.
func (s *Show) Renumber() {
	renumber(s.Seasons)
	for _, season := range s.Seasons {
		season.Renumber()
	}
}

// Length returns the total length of all episodes in seconds.
func (s *Show) Length() int {
	total := 0
	for _, season := range s.Seasons {
		total += season.Length()
	}
	return total
}

// EpisodesCount returns the number of episodes across all seasons.
func (s *Show) EpisodesCount() int {
	count := 0
	for _, season := range s.Seasons {
		count += len(season.Episodes)
	}
	return count
}

// Clone returns a deep copy of the season.
func (s *Season) Clone() *Season {
	c := *s
	c.Subtitles = cloneLanguages(s.Subtitles)
	c.Episodes = cloneSlice(s.Episodes)
	return &c
}

// Detach clears the identities of the season and its episodes.
func (s *Season) Detach() {
	s.ID = 0
	s.ShowID = 0
	for _, episode := range s.Episodes {
		episode.Detach()
	}
	s.Renumber()
}

// Renumber renumbers the episodes.
func (s *Season) Renumber() {
	renumber(s.Episodes)
}

// Length returns the total length of the episodes in seconds.
func (s *Season) Length() int {
	total := 0
	for _, episode := range s.Episodes {
		total += episode.Length
	}
	return total
}

// Clone returns a copy of the episode.
func (e *Episode) Clone() *Episode {
	c := *e
	return &c
}

// Detach clears the identity of the episode.
func (e *Episode) Detach() {
	e.ID = 0
	e.SeasonID = 0
}

// Renumber does nothing, episodes own no children.
func (e *Episode) Renumber() {}
