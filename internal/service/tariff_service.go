package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"logistics/internal/domain"
	"logistics/internal/port"
	"logistics/internal/tariff"
)

// TariffService answers tariff lookups and shipping-cost calculations.
type TariffService interface {
	// Load fills the table from the source. On a source error the table is
	// left empty and the error is returned for reporting only.
	Load(ctx context.Context) error
	List() []domain.TariffRecord
	Size() int
	Destinations() []string
	Calculate(req domain.CalculationRequest) (*domain.CalculationResult, error)
}

type tariffService struct {
	source port.TariffSource
	table  *tariff.Table
	log    *zap.Logger
}

// NewTariffService creates a new TariffService backed by table.
func NewTariffService(source port.TariffSource, table *tariff.Table, log *zap.Logger) TariffService {
	return &tariffService{source: source, table: table, log: log}
}

func (s *tariffService) Load(ctx context.Context) error {
	records, err := s.source.Load(ctx)
	if err != nil {
		s.table.Load(nil)
		s.log.Error("failed to load tariffs, serving an empty table",
			zap.String("source", s.source.Name()),
			zap.Error(err),
		)
		return fmt.Errorf("loading tariffs from %s: %w", s.source.Name(), err)
	}

	valid := make([]domain.TariffRecord, 0, len(records))
	for i := range records {
		if verr := records[i].Validate(); verr != nil {
			s.log.Warn("skipping tariff record", zap.Int("index", i), zap.Error(verr))
			continue
		}
		valid = append(valid, records[i])
	}

	for _, dup := range s.table.Load(valid) {
		s.log.Warn("duplicate tariff destination, first record wins", zap.String("destination", dup))
	}

	if s.table.Size() == 0 {
		s.log.Warn("tariff table is empty, every destination lookup will miss",
			zap.String("source", s.source.Name()),
		)
		return nil
	}
	s.log.Info("loaded tariff destinations into memory",
		zap.Int("count", s.table.Size()),
		zap.String("source", s.source.Name()),
	)
	return nil
}

func (s *tariffService) List() []domain.TariffRecord {
	return s.table.Records()
}

func (s *tariffService) Size() int {
	return s.table.Size()
}

func (s *tariffService) Destinations() []string {
	return s.table.Destinations()
}

func (s *tariffService) Calculate(req domain.CalculationRequest) (*domain.CalculationResult, error) {
	record, ok := s.table.FindByDestination(req.Destination)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrDestinationNotFound, req.Destination)
	}
	result := domain.Calculate(record, req.WeightKg)
	if math.IsInf(result.TotalCost, 0) {
		return nil, fmt.Errorf("%w: total cost for %v kg overflows", domain.ErrInvalidWeight, req.WeightKg)
	}
	return &result, nil
}
