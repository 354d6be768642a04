package domain

// SourceFormat is the encoding of a tariff data source.
type SourceFormat string

const (
	SourceFormatJSON SourceFormat = "json"
	SourceFormatXLSX SourceFormat = "xlsx"
)

// AllowedSourceExtensions maps file extensions (without dot) to SourceFormat.
var AllowedSourceExtensions = map[string]SourceFormat{
	"json": SourceFormatJSON,
	"xlsx": SourceFormatXLSX,
}

// HealthStatus is reported by the health endpoint.
type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusDegraded HealthStatus = "degraded"
)
