package budget

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/model"
)

// Header is the CSV header for budgets.csv.
const Header = "category,name,commodity,assigned,activity,available"

const (
	numFields    = 6
	colCategory  = 0
	colName      = 1
	colCommodity = 2
	colAssigned  = 3
	colActivity  = 4
	colAvailable = 5
)

// ReadItems reads all line items from a budgets.csv reader.
func ReadItems(r io.Reader) ([]model.BudgetLineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budgets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var items []model.BudgetLineItem
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes line items to a budgets.csv writer (including header).
func WriteItems(w io.Writer, items []model.BudgetLineItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalItem converts a BudgetLineItem to a CSV row.
func MarshalItem(item model.BudgetLineItem) []string {
	row := make([]string, numFields)
	row[colCategory] = item.Category
	row[colName] = item.Name
	row[colCommodity] = item.Commodity
	row[colAssigned] = item.Assigned.String()
	row[colActivity] = item.Activity.String()
	row[colAvailable] = item.Available.String()
	return row
}

// UnmarshalItem converts a CSV row to a BudgetLineItem. Empty amounts are zero.
func UnmarshalItem(record []string) (model.BudgetLineItem, error) {
	if len(record) != numFields {
		return model.BudgetLineItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colCategory] == "" {
		return model.BudgetLineItem{}, errors.New("missing category")
	}

	amounts := make([]decimal.Decimal, 3)
	for i, col := range []int{colAssigned, colActivity, colAvailable} {
		if record[col] == "" {
			continue
		}
		d, err := decimal.NewFromString(record[col])
		if err != nil {
			return model.BudgetLineItem{}, fmt.Errorf("parsing %s %q: %w", strings.Split(Header, ",")[col], record[col], err)
		}
		amounts[i] = d
	}

	return model.BudgetLineItem{
		Category:  record[colCategory],
		Name:      record[colName],
		Commodity: record[colCommodity],
		Assigned:  amounts[0],
		Activity:  amounts[1],
		Available: amounts[2],
	}, nil
}
