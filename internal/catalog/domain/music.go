package domain

// Music is an album or collection made of songs.
type Music struct {
	Item
	Name       string `gorm:"not null"`
	WikiEn     string
	WikiCz     string
	MediaCount int `gorm:"not null"`
	Note       string
	Songs      []*Song `gorm:"foreignKey:MusicID"`
}

// TableName overrides the table name.
func (Music) TableName() string { return "music" }

// Song is one song of a music.
type Song struct {
	Item
	MusicID int    `gorm:"index;not null"`
	Name    string `gorm:"not null"`
	// Length in seconds.
	Length int `gorm:"not null"`
	Note   string
}

// TableName overrides the table name.
func (Song) TableName() string { return "songs" }

// Clone returns a deep copy of the music.
func (m *Music) Clone() *Music {
	c := *m
	c.Songs = cloneSlice(m.Songs)
	return &c
}

// Detach clears the identities of the music and its songs.
func (m *Music) Detach() {
	m.ID = 0
	for _, song := range m.Songs {
		song.Detach()
	}
	m.Renumber()
}

// Renumber renumbers the songs.
func (m *Music) Renumber() {
	renumber(m.Songs)
}

// Length returns the total length of the songs in seconds.
func (m *Music) Length() int {
	total := 0
	for _, song := range m.Songs {
		total += song.Length
	}
	return total
}

// Clone returns a copy of the song.
func (s *Song) Clone() *Song {
	c := *s
	return &c
}

// Detach clears the identity of the song.
func (s *Song) Detach() {
	s.ID = 0
	s.MusicID = 0
}

// Renumber does nothing, songs own no children.
func (s *Song) Renumber() {}
