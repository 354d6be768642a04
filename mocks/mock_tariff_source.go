package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logistics/internal/domain"
)

// MockTariffSource is a mock implementation of port.TariffSource.
type MockTariffSource struct {
	mock.Mock
}

func (m *MockTariffSource) Load(ctx context.Context) ([]domain.TariffRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TariffRecord), args.Error(1)
}

func (m *MockTariffSource) Name() string {
	args := m.Called()
	return args.String(0)
}
