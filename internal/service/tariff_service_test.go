package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"logistics/internal/domain"
	"logistics/internal/service"
	"logistics/internal/tariff"
	"logistics/mocks"
)

func newTariffService(records []domain.TariffRecord, loadErr error) (service.TariffService, *tariff.Table, *mocks.MockTariffSource) {
	src := new(mocks.MockTariffSource)
	src.On("Name").Return("data/tariffs.json")
	if loadErr != nil {
		src.On("Load", mock.Anything).Return(nil, loadErr)
	} else {
		src.On("Load", mock.Anything).Return(records, nil)
	}
	table := tariff.NewTable()
	return service.NewTariffService(src, table, zap.NewNop()), table, src
}

func TestTariffService_Load_Success(t *testing.T) {
	svc, table, src := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
		{Destination: "Bandung", CostPerKg: 6000, BaseCost: 12000},
	}, nil)

	err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, svc.Size())
	assert.Equal(t, 2, table.Size())
	assert.Equal(t, []string{"Jakarta", "Bandung"}, svc.Destinations())
	src.AssertExpectations(t)
}

func TestTariffService_Load_SourceErrorLeavesEmptyTable(t *testing.T) {
	svc, table, _ := newTariffService(nil, errors.New("open data/tariffs.json: no such file or directory"))
	table.Load([]domain.TariffRecord{{Destination: "Stale", CostPerKg: 1, BaseCost: 1}})

	err := svc.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.Equal(t, 0, svc.Size())
	assert.Empty(t, svc.List())
}

func TestTariffService_Load_SkipsInvalidRecords(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
		{Destination: "", CostPerKg: 1, BaseCost: 1},
		{Destination: "Bogor", CostPerKg: -1, BaseCost: 1},
	}, nil)

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"Jakarta"}, svc.Destinations())
}

func TestTariffService_Load_EmptySource(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{}, nil)

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, 0, svc.Size())
}

func TestTariffService_Calculate(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
	}, nil)
	require.NoError(t, svc.Load(context.Background()))

	lower, err := svc.Calculate(domain.CalculationRequest{Destination: "jakarta", WeightKg: 2})
	require.NoError(t, err)
	upper, err := svc.Calculate(domain.CalculationRequest{Destination: "JAKARTA", WeightKg: 2})
	require.NoError(t, err)

	assert.Equal(t, 20000.0, lower.TotalCost)
	assert.Equal(t, "Jakarta", lower.Destination)
	assert.Equal(t, lower, upper)
}

func TestTariffService_Calculate_DuplicateUsesFirst(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
		{Destination: "jakarta", CostPerKg: 1, BaseCost: 1},
	}, nil)
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.Calculate(domain.CalculationRequest{Destination: "JAKARTA", WeightKg: 1})

	require.NoError(t, err)
	assert.Equal(t, 15000.0, result.TotalCost)
	assert.Equal(t, 2, svc.Size())
}

func TestTariffService_Calculate_NotFound(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
	}, nil)
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.Calculate(domain.CalculationRequest{Destination: "Atlantis", WeightKg: 1})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestTariffService_Calculate_OverflowIsInvalidWeight(t *testing.T) {
	svc, _, _ := newTariffService([]domain.TariffRecord{
		{Destination: "Jakarta", CostPerKg: 5000, BaseCost: 10000},
	}, nil)
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.Calculate(domain.CalculationRequest{Destination: "Jakarta", WeightKg: 1e308})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}
