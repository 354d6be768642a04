package source

import (
	"context"
	"fmt"

	"logistics/internal/domain"
	"logistics/internal/port"
)

// ObjectSource reads tariffs from an object storage bucket.
type ObjectSource struct {
	store  port.ObjectStorage
	bucket string
	key    string
	format domain.SourceFormat
	sheet  string
}

// NewObjectSource creates an ObjectSource for bucket/key.
func NewObjectSource(store port.ObjectStorage, bucket, key string, format domain.SourceFormat, sheet string) *ObjectSource {
	return &ObjectSource{store: store, bucket: bucket, key: key, format: format, sheet: sheet}
}

// Name returns the source as an s3:// URI.
func (s *ObjectSource) Name() string { return "s3://" + s.bucket + "/" + s.key }

// Load downloads and decodes the object.
func (s *ObjectSource) Load(ctx context.Context) ([]domain.TariffRecord, error) {
	data, err := s.store.Download(ctx, s.bucket, s.key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.Name(), err)
	}
	return Decode(s.format, data, s.sheet)
}
