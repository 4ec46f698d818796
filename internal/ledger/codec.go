package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// DateFormat is the layout of the "date" field in the storage file.
const DateFormat = "2006-01-02 15:04:05"

const indent = "    "

// Record is one element of the storage file's JSON array.
type Record struct {
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

// ReadTransactions decodes a storage file. Every record is validated; one bad
// record fails the whole read.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing ledger JSON: %w", err)
	}

	txs := make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions encodes txs as an indented JSON array. An empty ledger is
// written as "[]".
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	records := make([]Record, 0, len(txs))
	for _, tx := range txs {
		records = append(records, MarshalTransaction(tx))
	}

	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// MarshalTransaction converts a Transaction to its stored form.
func MarshalTransaction(tx model.Transaction) Record {
	return Record{
		Type:        string(tx.Kind),
		Description: tx.Description,
		Amount:      json.Number(tx.Amount.String()),
		Date:        tx.Timestamp.Format(DateFormat),
	}
}

// UnmarshalTransaction converts a stored record into a Transaction.
// Dates are read in the local time zone, matching how they are written.
func UnmarshalTransaction(rec Record) (model.Transaction, error) {
	kind, err := model.ParseKind(rec.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}
	if err := ValidateAmount(amount); err != nil {
		return model.Transaction{}, err
	}

	ts, err := time.ParseInLocation(DateFormat, rec.Date, time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	return model.Transaction{
		Kind:        kind,
		Description: rec.Description,
		Amount:      amount,
		Timestamp:   ts,
	}, nil
}
