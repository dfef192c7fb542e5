package currency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Table is a fixed-rate conversion table. Rates are deliberately static so
// that adapting the same product twice always yields the same price; results
// are only as fresh as the table's version.
type Table struct {
	Version string                     `json:"version"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

func rateKey(from, to string) string {
	return from + "/" + to
}

// Default returns the compiled-in rate table.
func Default() *Table {
	rates := map[string]string{
		"EUR/USD": "1.08",
		"USD/EUR": "0.93",
		"EUR/GBP": "0.86",
		"GBP/EUR": "1.16",
		"USD/GBP": "0.79",
		"GBP/USD": "1.27",
		"EUR/JPY": "163.50",
		"USD/JPY": "151.40",
		"EUR/CNY": "7.85",
		"USD/CNY": "7.24",
	}
	t := &Table{Version: "2024-01", Rates: make(map[string]decimal.Decimal, len(rates))}
	for key, rate := range rates {
		t.Rates[key] = decimal.RequireFromString(rate)
	}
	return t
}

// Load reads a rate table from a JSON file. Used to swap the compiled-in
// defaults for an operator-maintained table at startup.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table: %w", err)
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse rate table: %w", err)
	}
	if t.Version == "" {
		return nil, fmt.Errorf("rate table %s has no version", path)
	}
	return &t, nil
}

// Rate returns the fixed rate for from→to, if the table declares one.
func (t *Table) Rate(from, to string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[rateKey(from, to)]
	return rate, ok
}

// Convert applies the from→to rate and rounds to two decimal places.
func (t *Table) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount.Round(2), nil
	}
	rate, ok := t.Rate(from, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("no conversion rate from %s to %s", from, to)
	}
	return amount.Mul(rate).Round(2), nil
}
