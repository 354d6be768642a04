package source

import (
	"context"
	"fmt"
	"os"

	"logistics/internal/domain"
)

// FileSource reads tariffs from a local file.
type FileSource struct {
	path   string
	format domain.SourceFormat
	sheet  string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, format domain.SourceFormat, sheet string) *FileSource {
	return &FileSource{path: path, format: format, sheet: sheet}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Load reads and decodes the file.
func (s *FileSource) Load(_ context.Context) ([]domain.TariffRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return Decode(s.format, data, s.sheet)
}
