package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/domain"
)

func TestParseCalculationRequest_Valid(t *testing.T) {
	req, err := domain.ParseCalculationRequest([]byte(`{"destination":"jakarta","weight_kg":2}`))

	require.NoError(t, err)
	assert.Equal(t, "jakarta", req.Destination)
	assert.Equal(t, 2.0, req.WeightKg)
}

func TestParseCalculationRequest_FractionalWeight(t *testing.T) {
	req, err := domain.ParseCalculationRequest([]byte(`{"destination":"Bandung","weight_kg":0.25}`))

	require.NoError(t, err)
	assert.Equal(t, 0.25, req.WeightKg)
}

func TestParseCalculationRequest_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"malformed json", `{"destination": "Jakarta",`, domain.ErrMalformedBody},
		{"not json at all", `destination=Jakarta`, domain.ErrMalformedBody},
		{"empty body", ``, domain.ErrMissingFields},
		{"empty object", `{}`, domain.ErrMissingFields},
		{"missing destination", `{"weight_kg":2}`, domain.ErrMissingFields},
		{"missing destination with bad weight", `{"weight_kg":"10"}`, domain.ErrMissingFields},
		{"empty destination", `{"destination":"","weight_kg":2}`, domain.ErrMissingFields},
		{"null destination", `{"destination":null,"weight_kg":2}`, domain.ErrMissingFields},
		{"missing weight", `{"destination":"Jakarta"}`, domain.ErrMissingFields},
		{"array body", `[{"destination":"Jakarta","weight_kg":2}]`, domain.ErrMissingFields},
		{"zero weight", `{"destination":"Jakarta","weight_kg":0}`, domain.ErrInvalidWeight},
		{"negative weight", `{"destination":"Jakarta","weight_kg":-5}`, domain.ErrInvalidWeight},
		{"string weight", `{"destination":"Jakarta","weight_kg":"10"}`, domain.ErrInvalidWeight},
		{"null weight", `{"destination":"Jakarta","weight_kg":null}`, domain.ErrInvalidWeight},
		{"bool weight", `{"destination":"Jakarta","weight_kg":true}`, domain.ErrInvalidWeight},
		{"overflowing weight", `{"destination":"Jakarta","weight_kg":1e400}`, domain.ErrInvalidWeight},
		{"numeric destination", `{"destination":5,"weight_kg":2}`, domain.ErrInvalidDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseCalculationRequest([]byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalculate_Example(t *testing.T) {
	record := domain.TariffRecord{
		Destination: "Jakarta",
		CostPerKg:   5000,
		BaseCost:    10000,
		ETADays:     json.RawMessage("2"),
	}

	result := domain.Calculate(record, 2)

	assert.Equal(t, "Jakarta", result.Destination)
	assert.Equal(t, 2.0, result.WeightKg)
	assert.Equal(t, 5000.0, result.CostPerKg)
	assert.Equal(t, 10000.0, result.BaseCost)
	assert.Equal(t, 20000.0, result.TotalCost)
	assert.JSONEq(t, "2", string(result.ETA))
	assert.Equal(t, "(5000 x 2) + 10000 = 20000", result.Calculation)
}

func TestCalculate_NoRounding(t *testing.T) {
	costPerKg := 0.1
	record := domain.TariffRecord{Destination: "Bogor", CostPerKg: costPerKg, BaseCost: 0}

	result := domain.Calculate(record, 3)

	assert.Equal(t, costPerKg*3, result.TotalCost)
	assert.Equal(t, "(0.1 x 3) + 0 = 0.30000000000000004", result.Calculation)
}

func TestCalculate_StringETAPassesThrough(t *testing.T) {
	record := domain.TariffRecord{Destination: "Surabaya", CostPerKg: 7500, BaseCost: 15000, ETADays: json.RawMessage(`"3-4"`)}

	result := domain.Calculate(record, 1.5)

	assert.InDelta(t, 7500*1.5+15000, result.TotalCost, 1e-9)
	assert.JSONEq(t, `"3-4"`, string(result.ETA))
}

func TestCalculate_MissingETAIsNull(t *testing.T) {
	result := domain.Calculate(domain.TariffRecord{Destination: "Medan", CostPerKg: 1, BaseCost: 1}, 1)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"eta":null`)
}
