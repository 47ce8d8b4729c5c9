// Package prices reads and writes prices.csv, the commodity price history.
package prices

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/model"
)

// Header is the CSV header for prices.csv.
const Header = "date,commodity,amount,target"

const (
	numFields    = 4
	dateFormat   = "2006-01-02"
	colDate      = 0
	colCommodity = 1
	colAmount    = 2
	colTarget    = 3
)

// ReadPrices reads all prices from a prices.csv reader.
func ReadPrices(r io.Reader) ([]model.Price, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading prices CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var prices []model.Price
	for i, rec := range records[1:] {
		p, err := UnmarshalPrice(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// WritePrices writes prices to a prices.csv writer (including header).
func WritePrices(w io.Writer, prices []model.Price) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range prices {
		if err := cw.Write(MarshalPrice(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalPrice converts a Price to a CSV row.
func MarshalPrice(p model.Price) []string {
	row := make([]string, numFields)
	row[colDate] = p.Date.Format(dateFormat)
	row[colCommodity] = p.Commodity
	row[colAmount] = p.Amount.String()
	row[colTarget] = p.Target
	return row
}

// UnmarshalPrice converts a CSV row to a Price.
func UnmarshalPrice(record []string) (model.Price, error) {
	if len(record) != numFields {
		return model.Price{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Price{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	if record[colCommodity] == "" || record[colTarget] == "" {
		return model.Price{}, fmt.Errorf("price on %s needs both commodity and target", record[colDate])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Price{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !amount.IsPositive() {
		return model.Price{}, fmt.Errorf("price %s of %s must be positive", amount, record[colCommodity])
	}

	return model.Price{
		Date:      date,
		Commodity: record[colCommodity],
		Amount:    amount,
		Target:    record[colTarget],
	}, nil
}
