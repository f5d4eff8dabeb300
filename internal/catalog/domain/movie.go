package domain

// Movie is a film in the catalog.
type Movie struct {
	Item
	CzechName    string     `gorm:"not null"`
	OriginalName string     `gorm:"not null"`
	Year         int        `gorm:"not null"`
	Language     Language   `gorm:"size:2;not null"`
	Subtitles    []Language `gorm:"serializer:json"`
	Media        []*Medium  `gorm:"foreignKey:MovieID"`
	Csfd         string
	ImdbCode     int
	WikiEn       string
	WikiCz       string
	Picture      *int
	Note         string
	Genres       []*Genre `gorm:"many2many:movie_genres"`
}

// TableName overrides the table name.
func (Movie) TableName() string { return "movies" }

// Medium is one physical medium of a movie.
type Medium struct {
	Item
	MovieID int `gorm:"index;not null"`
	Number  int `gorm:"not null"`
	// Length in seconds.
	Length int `gorm:"not null"`
}

// TableName overrides the table name.
func (Medium) TableName() string { return "media" }

// Clone returns a deep copy of the medium.
func (m *Medium) Clone() *Medium {
	c := *m
	return &c
}

// Clone returns a deep copy of the movie.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Subtitles = cloneLanguages(m.Subtitles)
	c.Media = cloneSlice(m.Media)
	c.Genres = cloneSlice(m.Genres)
	c.Picture = cloneInt(m.Picture)
	return &c
}

// Detach clears the identities of the movie and its media.
// Genres and picture are references and are kept.
func (m *Movie) Detach() {
	m.ID = 0
	for _, medium := range m.Media {
		medium.ID = 0
		medium.MovieID = 0
	}
	m.Renumber()
}

// Renumber renumbers the media.
func (m *Movie) Renumber() {
	renumber(m.Media)
}

// Length returns the total length of all media in seconds.
func (m *Movie) Length() int {
	total := 0
	for _, medium := range m.Media {
		total += medium.Length
	}
	return total
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
