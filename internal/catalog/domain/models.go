package domain

// Models returns every persisted catalog model, parents before children.
func Models() []interface{} {
	return []interface{}{
		&Genre{},
		&Picture{},
		&Movie{},
		&Medium{},
		&Show{},
		&Season{},
		&Episode{},
		&Game{},
		&Cheat{},
		&CheatData{},
		&Music{},
		&Song{},
		&Program{},
	}
}
