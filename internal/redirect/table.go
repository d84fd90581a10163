// Package redirect permanently redirects dormant URLs of the previous site to
// the home page.
package redirect

import "sort"

// Target is where every dormant path is sent.
const Target = "/"

// Table is a read-only set of literal paths. It is safe for concurrent use.
type Table struct {
	paths map[string]struct{}
}

// NewTable builds a table from literal paths. Duplicates collapse.
func NewTable(paths ...string) *Table {
	t := &Table{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		t.paths[p] = struct{}{}
	}
	return t
}

// DefaultTable returns the table of the site's dormant URLs.
func DefaultTable() *Table {
	return NewTable(legacyPaths...)
}

// Contains reports whether path is an exact member of the table.
// Query strings, case and trailing slashes are not normalised.
func (t *Table) Contains(path string) bool {
	_, ok := t.paths[path]
	return ok
}

func (t *Table) Len() int {
	return len(t.paths)
}

// Paths returns the members in lexical order.
func (t *Table) Paths() []string {
	out := make([]string, 0, len(t.paths))
	for p := range t.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
