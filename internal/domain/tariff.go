package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// TariffRecord is a priced shipping rule for one destination.
type TariffRecord struct {
	Destination string          `json:"destination"`
	CostPerKg   float64         `json:"cost_per_kg"`
	BaseCost    float64         `json:"base_cost"`
	ETADays     json.RawMessage `json:"eta_days"`
}

// Validate checks that the record can be priced.
func (r *TariffRecord) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is empty", ErrInvalidTariff)
	}
	if !nonNegative(r.CostPerKg) {
		return fmt.Errorf("%w: %s: cost_per_kg must be a non-negative number", ErrInvalidTariff, r.Destination)
	}
	if !nonNegative(r.BaseCost) {
		return fmt.Errorf("%w: %s: base_cost must be a non-negative number", ErrInvalidTariff, r.Destination)
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
