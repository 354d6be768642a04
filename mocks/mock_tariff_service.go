package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logistics/internal/domain"
)

// MockTariffService is a mock implementation of service.TariffService.
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTariffService) List() []domain.TariffRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.TariffRecord)
}

func (m *MockTariffService) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockTariffService) Destinations() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockTariffService) Calculate(req domain.CalculationRequest) (*domain.CalculationResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationResult), args.Error(1)
}
