package content

import (
	"log/slog"
	"sync/atomic"
)

// Source holds the active catalog and supports atomic swaps on reload.
// Readers always see a fully validated catalog; a failed reload keeps the
// previous one in place.
type Source struct {
	path    string // empty when running on the built-in dataset
	catalog atomic.Pointer[Catalog]
	logger  *slog.Logger
}

// NewSource builds a source over an initial catalog. path is the dataset
// file to reload from, or empty for the built-in dataset.
func NewSource(catalog *Catalog, path string, logger *slog.Logger) *Source {
	s := &Source{path: path, logger: logger}
	s.catalog.Store(catalog)
	return s
}

// Catalog returns the active catalog.
func (s *Source) Catalog() *Catalog {
	return s.catalog.Load()
}

// Reload re-reads the dataset file and swaps the catalog in. No-op when the
// source was built from the built-in dataset. Validation failure leaves the
// active catalog untouched and returns the error.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}

	catalog, err := Load(s.path)
	if err != nil {
		return err
	}
	for _, warning := range catalog.Warnings() {
		s.logger.Warn("dataset warning", "warning", warning)
	}

	s.catalog.Store(catalog)
	s.logger.Info("dataset reloaded",
		"path", s.path,
		"posts", len(catalog.Posts()),
		"quizzes", len(catalog.Quizzes()))
	return nil
}
