package ledger

import (
	"os"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// DefaultFile is the storage file name used when no path is configured.
const DefaultFile = "budget_data.json"

// Store owns one ledger and the file it is persisted to. Every append
// rewrites the whole file.
type Store struct {
	path string
	txs  []model.Transaction
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to stamp new transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty Store backed by path. Call Load to read the file.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the storage file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of transactions.
func (s *Store) Len() int { return len(s.txs) }

// Load replaces the ledger with the contents of the storage file. On any
// failure the ledger is left empty and a *ReadError is returned; a missing
// file matches fs.ErrNotExist.
func (s *Store) Load() error {
	s.txs = nil

	f, err := os.Open(s.path)
	if err != nil {
		return &ReadError{Path: s.path, Err: err}
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return &ReadError{Path: s.path, Err: err}
	}
	s.txs = txs
	return nil
}

// Save overwrites the storage file with the full ledger.
func (s *Store) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	if err := WriteTransactions(f, s.txs); err != nil {
		f.Close()
		return &WriteError{Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// Append records a new transaction stamped with the current time and saves
// the ledger. Invalid input is rejected before anything changes. If only the
// save fails, the transaction stays in memory and is returned together with
// the *WriteError.
func (s *Store) Append(kind model.Kind, description string, amount decimal.Decimal) (model.Transaction, error) {
	if err := ValidateKind(kind); err != nil {
		return model.Transaction{}, err
	}
	if err := ValidateAmount(amount); err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Timestamp:   s.now().Truncate(time.Second),
	}
	s.txs = append(s.txs, tx)

	return tx, s.Save()
}

// Summarize totals income and expenses.
func (s *Store) Summarize() model.Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range s.txs {
		switch tx.Kind {
		case model.KindIncome:
			income = income.Add(tx.Amount)
		case model.KindExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return model.Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// History returns the transactions newest first. Transactions with equal
// timestamps keep their insertion order.
func (s *Store) History() []model.Transaction {
	out := slices.Clone(s.txs)
	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// Transactions returns the transactions in insertion order.
func (s *Store) Transactions() []model.Transaction {
	return slices.Clone(s.txs)
}
