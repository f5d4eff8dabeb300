package domain

// Program is a software program in the catalog.
type Program struct {
	Item
	Name       string `gorm:"not null"`
	WikiEn     string
	WikiCz     string
	MediaCount int `gorm:"not null"`
	Crack      bool
	SerialKey  bool
	OtherData  string
	Note       string
}

// TableName overrides the table name.
func (Program) TableName() string { return "programs" }

func (p *Program) Clone() *Program {
	c := *p
	return &c
}

func (p *Program) Detach() {
	p.ID = 0
}

func (p *Program) Renumber() {}

// Genre classifies movies and shows.
type Genre struct {
	Item
	Name string `gorm:"not null"`
}

// TableName overrides the table name.
func (Genre) TableName() string { return "genres" }

func (g *Genre) Clone() *Genre {
	c := *g
	return &c
}

func (g *Genre) Detach() {
	g.ID = 0
}

func (g *Genre) Renumber() {}

// Picture is an image referenced by movies and shows.
// When a blob store is configured the content lives there under StorageKey.
type Picture struct {
	Item
	Content    []byte
	StorageKey string `gorm:"size:64"`
}

// TableName overrides the table name.
func (Picture) TableName() string { return "pictures" }

func (p *Picture) Clone() *Picture {
	c := *p
	if p.Content != nil {
		c.Content = append([]byte(nil), p.Content...)
	}
	return &c
}

// Detach clears the identity and the blob key, a copy gets its own blob.
func (p *Picture) Detach() {
	p.ID = 0
	p.StorageKey = ""
}

func (p *Picture) Renumber() {}
