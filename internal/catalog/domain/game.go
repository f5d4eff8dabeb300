package domain

// Game is a computer game in the catalog. A game owns at most one cheat.
type Game struct {
	Item
	Name        string `gorm:"not null"`
	WikiEn      string
	WikiCz      string
	MediaCount  int `gorm:"not null"`
	Crack       bool
	SerialKey   bool
	Patch       bool
	Trainer     bool
	TrainerData bool
	Editor      bool
	Saves       bool
	OtherData   string
	Note        string
	Cheat       *Cheat `gorm:"foreignKey:GameID"`
}

// TableName overrides the table name.
func (Game) TableName() string { return "games" }

// Cheat holds cheat codes of a game.
type Cheat struct {
	Item
	GameID       int `gorm:"uniqueIndex;not null"`
	GameSetting  string
	CheatSetting string
	Data         []*CheatData `gorm:"foreignKey:CheatID"`
}

// TableName overrides the table name.
func (Cheat) TableName() string { return "cheats" }

// CheatData is one action and its description.
type CheatData struct {
	Item
	CheatID     int    `gorm:"index;not null"`
	Action      string `gorm:"not null"`
	Description string `gorm:"not null"`
}

// TableName overrides the table name.
func (CheatData) TableName() string { return "cheat_data" }

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	if g.Cheat != nil {
		c.Cheat = g.Cheat.Clone()
	}
	return &c
}

// Detach clears the identities of the game and its cheat.
func (g *Game) Detach() {
	g.ID = 0
	if g.Cheat != nil {
		g.Cheat.Detach()
	}
}

// Renumber renumbers the cheat data.
func (g *Game) Renumber() {
	if g.Cheat != nil {
		g.Cheat.Renumber()
	}
}

// Clone returns a deep copy of the cheat.
func (c *Cheat) Clone() *Cheat {
	cp := *c
	cp.Data = cloneSlice(c.Data)
	return &cp
}

// Detach clears the identities of the cheat and its data.
func (c *Cheat) Detach() {
	c.ID = 0
	c.GameID = 0
	for _, data := range c.Data {
		data.ID = 0
		data.CheatID = 0
	}
	c.Renumber()
}

// Renumber renumbers the cheat data.
func (c *Cheat) Renumber() {
	renumber(c.Data)
}

// Clone returns a copy of the cheat data.
func (d *CheatData) Clone() *CheatData {
	c := *d
	return &c
}
