package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgertree/ledgertree/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "txn,date,account,commodity,amount,narration"

const (
	numFields    = 6
	dateFormat   = "2006-01-02"
	colTxn       = 0
	colDate      = 1
	colAccount   = 2
	colCommodity = 3
	colAmount    = 4
	colNarration = 5
)

// ReadPostings reads all postings from a journal.csv reader.
func ReadPostings(r io.Reader) ([]model.Posting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var postings []model.Posting
	for i, rec := range records[1:] {
		p, err := UnmarshalPosting(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// WritePostings writes postings to a journal.csv writer (including header).
func WritePostings(w io.Writer, postings []model.Posting) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range postings {
		if err := cw.Write(MarshalPosting(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendPostings appends postings to an existing journal.csv writer (no header).
func AppendPostings(w io.Writer, postings []model.Posting) error {
	cw := csv.NewWriter(w)

	for i, p := range postings {
		if err := cw.Write(MarshalPosting(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalPosting converts a Posting to a CSV row.
func MarshalPosting(p model.Posting) []string {
	row := make([]string, numFields)
	row[colTxn] = p.Txn
	row[colDate] = p.Date.Format(dateFormat)
	row[colAccount] = p.Account
	row[colCommodity] = p.Commodity
	row[colAmount] = p.Amount.String()
	row[colNarration] = p.Narration
	return row
}

// UnmarshalPosting converts a CSV row to a Posting.
func UnmarshalPosting(record []string) (model.Posting, error) {
	if len(record) != numFields {
		return model.Posting{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Posting{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	if record[colCommodity] == "" {
		return model.Posting{}, fmt.Errorf("missing commodity for account %q", record[colAccount])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Posting{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Posting{
		Txn:       record[colTxn],
		Date:      date,
		Account:   record[colAccount],
		Commodity: record[colCommodity],
		Amount:    amount,
		Narration: record[colNarration],
	}, nil
}
