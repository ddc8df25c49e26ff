// Package apps holds the launcher's static application catalog.
package apps

import (
	"log"

	"github.com/sahilm/fuzzy"
)

// App is one launcher entry.
type App struct {
	ID   int    `toml:"id"`
	Name string `toml:"name"`
	Icon string `toml:"icon"`
}

// Placeholders is the built-in catalog.
var Placeholders = []App{
	{ID: 1, Name: "File Manager", Icon: "📁"},
	{ID: 2, Name: "Browser", Icon: "🌐"},
	{ID: 3, Name: "Terminal", Icon: "💻"},
	{ID: 4, Name: "Settings", Icon: "⚙"},
	{ID: 5, Name: "Text Editor", Icon: "📝"},
	{ID: 6, Name: "Media Player", Icon: "🎵"},
}

// Catalog is a read-only list of apps.
type Catalog struct {
	apps []App
}

// NewCatalog copies apps into a catalog. An empty list yields the placeholders.
func NewCatalog(list []App) *Catalog {
	if len(list) == 0 {
		list = Placeholders
	}
	return &Catalog{apps: append([]App(nil), list...)}
}

// All returns the catalog in declaration order.
func (c *Catalog) All() []App {
	return append([]App(nil), c.apps...)
}

// Len returns the number of apps.
func (c *Catalog) Len() int { return len(c.apps) }

// names implements fuzzy.Source.
type names []App

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }

// Filter returns the apps matching query, best match first. An empty query
// returns the whole catalog.
func (c *Catalog) Filter(query string) []App {
	if query == "" {
		return c.All()
	}
	matches := fuzzy.FindFrom(query, names(c.apps))
	out := make([]App, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.apps[m.Index])
	}
	return out
}

// Launch activates an app. Process launching is out of scope, so activation
// only records the request.
func Launch(a App) {
	log.Printf("launcher: Opening %s", a.Name)
}
