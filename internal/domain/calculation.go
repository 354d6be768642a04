package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CalculationRequest is a validated POST /calculate body.
type CalculationRequest struct {
	Destination string
	WeightKg    float64
}

// CalculationResult is the priced answer for one CalculationRequest.
type CalculationResult struct {
	Destination string          `json:"destination"`
	WeightKg    float64         `json:"weight_kg"`
	BaseCost    float64         `json:"base_cost"`
	CostPerKg   float64         `json:"cost_per_kg"`
	TotalCost   float64         `json:"total_cost"`
	ETA         json.RawMessage `json:"eta"`
	Calculation string          `json:"calculation"`
}

// ParseCalculationRequest decodes and validates a calculation body.
// Rules are checked in order and the first failure is returned:
// syntax, required fields, weight type and range, destination type.
// An empty body is treated as an empty object.
func ParseCalculationRequest(body []byte) (CalculationRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return CalculationRequest{}, ErrMalformedBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		// Valid JSON that is not an object carries no fields.
		fields = nil
	}

	rawDest, hasDest := fields["destination"]
	rawWeight, hasWeight := fields["weight_kg"]
	if !hasDest || isFalsy(rawDest) || !hasWeight {
		return CalculationRequest{}, ErrMissingFields
	}

	weight, ok := parsePositiveNumber(rawWeight)
	if !ok {
		return CalculationRequest{}, ErrInvalidWeight
	}

	var dest string
	if err := json.Unmarshal(rawDest, &dest); err != nil {
		return CalculationRequest{}, ErrInvalidDestination
	}

	return CalculationRequest{Destination: dest, WeightKg: weight}, nil
}

// isFalsy reports whether a JSON value counts as absent: null, false, 0 or "".
func isFalsy(raw json.RawMessage) bool {
	switch string(raw) {
	case "null", "false", `""`:
		return true
	}
	var n float64
	if raw[0] != '"' && json.Unmarshal(raw, &n) == nil {
		return n == 0
	}
	return false
}

func parsePositiveNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, n > 0
}

// Calculate prices a shipment of weightKg against the tariff.
// total_cost = cost_per_kg * weight_kg + base_cost, unrounded.
func Calculate(t TariffRecord, weightKg float64) CalculationResult {
	// The explicit conversion rounds the product before the addition, preventing a fused multiply-add.
	total := float64(t.CostPerKg*weightKg) + t.BaseCost
	return CalculationResult{
		Destination: t.Destination,
		WeightKg:    weightKg,
		BaseCost:    t.BaseCost,
		CostPerKg:   t.CostPerKg,
		TotalCost:   total,
		ETA:         eta(t.ETADays),
		Calculation: fmt.Sprintf("(%s x %s) + %s = %s",
			formatNumber(t.CostPerKg), formatNumber(weightKg), formatNumber(t.BaseCost), formatNumber(total)),
	}
}

func eta(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
