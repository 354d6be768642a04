// Package source loads tariff records from local files or object storage.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"logistics/internal/domain"
)

// Column headers recognized in spreadsheet sources.
const (
	colDestination = "destination"
	colCostPerKg   = "cost_per_kg"
	colBaseCost    = "base_cost"
	colETADays     = "eta_days"
)

// Decode parses data in the given format into tariff records, preserving order.
func Decode(format domain.SourceFormat, data []byte, sheet string) ([]domain.TariffRecord, error) {
	switch format {
	case domain.SourceFormatJSON:
		return decodeJSON(data)
	case domain.SourceFormatXLSX:
		return decodeXLSX(data, sheet)
	default:
		return nil, fmt.Errorf("%w: format %q", domain.ErrUnsupportedSource, format)
	}
}

func decodeJSON(data []byte) ([]domain.TariffRecord, error) {
	var records []domain.TariffRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing tariff json: %w", err)
	}
	return records, nil
}

func decodeXLSX(data []byte, sheet string) ([]domain.TariffRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening tariff workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colDestination, colCostPerKg, colBaseCost} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("sheet %q: missing %q column", sheet, required)
		}
	}

	var records []domain.TariffRecord
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after header
		dest := cell(row, cols, colDestination)
		if dest == "" && isBlank(row) {
			continue
		}

		costPerKg, err := parseAmount(cell(row, cols, colCostPerKg))
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: cost_per_kg: %w", sheet, rowNum, err)
		}
		baseCost, err := parseAmount(cell(row, cols, colBaseCost))
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: base_cost: %w", sheet, rowNum, err)
		}

		records = append(records, domain.TariffRecord{
			Destination: dest,
			CostPerKg:   costPerKg,
			BaseCost:    baseCost,
			ETADays:     etaCell(cell(row, cols, colETADays)),
		})
	}
	return records, nil
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseAmount(val string) (float64, error) {
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(val, 64)
}

// etaCell keeps numeric ETAs as JSON numbers and everything else as JSON strings.
func etaCell(val string) json.RawMessage {
	if val == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(val, 64); err == nil {
		return json.RawMessage(strconv.FormatFloat(n, 'f', -1, 64))
	}
	b, _ := json.Marshal(val)
	return b
}
