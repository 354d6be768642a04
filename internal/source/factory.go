package source

import (
	"context"
	"fmt"
	"path"
	"strings"

	"logistics/internal/config"
	"logistics/internal/domain"
	"logistics/internal/port"
)

const objectScheme = "s3://"

// StorageFactory creates the object storage client for s3:// sources.
// It is only invoked when the configured source needs it.
type StorageFactory func() (port.ObjectStorage, error)

// NewSource creates a TariffSource from cfg. The format is chosen from the file extension.
// Only a malformed source URI is an error. If the object storage client cannot be
// created, the returned source fails on Load so the service starts with an empty table.
func NewSource(cfg *config.TariffsConfig, newStorage StorageFactory) (port.TariffSource, error) {
	uri := strings.TrimSpace(cfg.Source)
	if uri == "" {
		return nil, fmt.Errorf("%w: empty source", domain.ErrUnsupportedSource)
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(uri), "."))
	format, ok := domain.AllowedSourceExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s (allowed: .json, .xlsx)", domain.ErrUnsupportedSource, uri)
	}

	if !strings.HasPrefix(uri, objectScheme) {
		return NewFileSource(uri, format, cfg.Sheet), nil
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, objectScheme), "/")
	if !found || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: %s is not of the form s3://bucket/key", domain.ErrUnsupportedSource, uri)
	}
	store, err := newStorage()
	if err != nil {
		return &unavailableSource{name: uri, err: fmt.Errorf("creating object storage: %w", err)}, nil
	}
	return NewObjectSource(store, bucket, key, format, cfg.Sheet), nil
}

// unavailableSource stands in for a source whose backend could not be set up.
type unavailableSource struct {
	name string
	err  error
}

func (s *unavailableSource) Name() string { return s.name }

func (s *unavailableSource) Load(_ context.Context) ([]domain.TariffRecord, error) {
	return nil, s.err
}
