package port

import (
	"context"

	"logistics/internal/domain"
)

// TariffSource supplies the tariff records loaded at startup.
type TariffSource interface {
	// Load returns the records in source order.
	Load(ctx context.Context) ([]domain.TariffRecord, error)
	// Name identifies the source in logs, e.g. a path or s3:// URI.
	Name() string
}
