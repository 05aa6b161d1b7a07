package store

import (
	"github.com/budget-foyer/backend/internal/importer"
)

// ImportJSON parses an exported document of any known version and
// merges it into the state using the given mode. It returns the number
// of imported items. Parse failures leave the state untouched.
func (s *Store) ImportJSON(content []byte, mode importer.Mode) (int, error) {
	doc, err := importer.Parse(content)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := importer.Apply(&s.state, doc, mode)
	s.scheduleSave()
	return count, nil
}

// ExportJSON serializes the full state into the current envelope
// version.
func (s *Store) ExportJSON() ([]byte, error) {
	return importer.Export(s.Snapshot())
}

// ExportCSV writes the selected month's items as a semicolon-delimited
// table.
func (s *Store) ExportCSV() ([]byte, error) {
	return importer.ExportCSV(s.Snapshot())
}
