package rewrite

import (
	"strings"

	"git.home.luguber.info/inful/relink/internal/config"
)

// Table is an ordered prefix lookup over the configured mappings.
type Table struct {
	mappings []config.Mapping
}

// NewTable builds a lookup table. Order is preserved: the first prefix that
// matches a destination wins.
func NewTable(mappings []config.Mapping) Table {
	return Table{mappings: mappings}
}

// Lookup returns the first mapping whose URL prefix starts destination,
// together with the subpath after the prefix. The subpath may be empty, in
// which case the destination refers to the section's base directory itself.
func (t Table) Lookup(destination string) (config.Mapping, string, bool) {
	for _, m := range t.mappings {
		if strings.HasPrefix(destination, m.URLPrefix) {
			return m, destination[len(m.URLPrefix):], true
		}
	}
	return config.Mapping{}, "", false
}

// Matches reports whether any configured prefix starts destination.
func (t Table) Matches(destination string) bool {
	_, _, ok := t.Lookup(destination)
	return ok
}
