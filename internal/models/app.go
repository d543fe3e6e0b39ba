package models

// Keyword is a single searchable token with a relative importance weight.
// Name-derived keywords carry a much higher weight than description or
// Keywords= tokens so that name matches dominate the ranking.
type Keyword struct {
	Word   string
	Weight int
}

// Application represents one indexed desktop entry.
type Application struct {
	ID          string // Descriptor file path, unique within the catalog
	Name        string
	GenericName string
	Comment     string
	CommandLine string // Exec= value, handed to the launcher unmodified
	Keywords    []Keyword
	LaunchCount int
}

// Result is a scored reference to a catalog entry produced by one search
// pass. It carries the catalog index rather than a pointer so results stay
// meaningful if the catalog is ever rebuilt.
type Result struct {
	Index int
	Score int
}

// Catalog is the full ordered set of indexed applications for a run.
type Catalog []*Application

// ByID returns the application with the given id, or nil. Catalogs hold
// tens to low hundreds of entries, so a linear scan is fine.
func (c Catalog) ByID(id string) *Application {
	for _, app := range c {
		if app.ID == id {
			return app
		}
	}
	return nil
}
