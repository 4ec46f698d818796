package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/model"
	"github.com/cleared-dev/budget/internal/report"
)

// State is a step of the interactive loop.
type State int

const (
	StateMenu State = iota
	StateCollectDescription
	StateCollectAmount
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateCollectDescription:
		return "collect-description"
	case StateCollectAmount:
		return "collect-amount"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Ledger is the store the loop drives. *ledger.Store implements it.
type Ledger interface {
	Path() string
	Load() error
	Save() error
	Append(kind model.Kind, description string, amount decimal.Decimal) (model.Transaction, error)
	Summarize() model.Summary
	History() []model.Transaction
}

const menuText = `
--- BUDGET PLANNER MENU ---
1. Add Income
2. Add Expense
3. View Summary
4. View All Transactions
5. Exit and Save
`

const (
	promptChoice      = "Enter your choice (1-5): "
	promptDescription = "Enter description: "
	promptAmount      = "Enter amount: "
	farewell          = "\nThank you for using the Budget Planner. Goodbye!\n"
)

// Session holds the state of one interactive run.
type Session struct {
	ledger Ledger
	money  *report.Formatter
	in     *bufio.Reader
	out    io.Writer
	state  State

	// pending transaction while collecting input
	kind        model.Kind
	description string
}

// NewSession creates a Session reading commands from in and writing to out.
func NewSession(l Ledger, money *report.Formatter, in io.Reader, out io.Writer) *Session {
	return &Session{
		ledger: l,
		money:  money,
		in:     bufio.NewReader(in),
		out:    out,
		state:  StateMenu,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Load reads the ledger from disk and reports the outcome. A failed load is
// never fatal: the ledger starts empty.
func (s *Session) Load() {
	err := s.ledger.Load()
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Data loaded successfully from %s.\n", s.ledger.Path())
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(s.out, "No existing budget file found. Starting a new budget.")
	default:
		fmt.Fprintf(s.out, "Error loading data: %v. Starting with an empty budget.\n", err)
	}
}

// Run drives the loop until the user exits, input ends, or ctx is canceled.
// Data is saved after every append, so ending early loses nothing that was
// saved successfully.
func (s *Session) Run(ctx context.Context) error {
	for s.state != StateExit {
		if ctx.Err() != nil {
			return nil
		}

		var err error
		switch s.state {
		case StateMenu:
			err = s.handleMenu()
		case StateCollectDescription:
			err = s.collectDescription()
		case StateCollectAmount:
			err = s.collectAmount()
		default:
			return fmt.Errorf("unexpected state %s", s.state)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Run loads the ledger and runs an interactive session over it.
func Run(ctx context.Context, l Ledger, money *report.Formatter, in io.Reader, out io.Writer) error {
	s := NewSession(l, money, in, out)
	s.Load()
	return s.Run(ctx)
}

func (s *Session) handleMenu() error {
	fmt.Fprint(s.out, menuText)
	choice, err := s.readLine(promptChoice)
	if err != nil {
		return err
	}

	switch choice {
	case "1", "2":
		s.kind = model.KindIncome
		if choice == "2" {
			s.kind = model.KindExpense
		}
		fmt.Fprintf(s.out, "\n--- Adding %s ---\n", s.kind.Title())
		s.state = StateCollectDescription
	case "3":
		return report.WriteSummary(s.out, s.ledger.Summarize(), s.money)
	case "4":
		return report.WriteHistory(s.out, s.ledger.History(), s.money)
	case "5":
		s.reportSave(s.ledger.Save())
		fmt.Fprint(s.out, farewell)
		s.state = StateExit
	default:
		fmt.Fprintln(s.out, "\n[ERROR] Invalid choice. Please enter a number between 1 and 5.")
	}
	return nil
}

func (s *Session) collectDescription() error {
	desc, err := s.readLine(promptDescription)
	if err != nil {
		return err
	}
	s.description = desc
	s.state = StateCollectAmount
	return nil
}

// collectAmount stays in StateCollectAmount until a valid amount is entered.
func (s *Session) collectAmount() error {
	line, err := s.readLine(promptAmount)
	if err != nil {
		return err
	}

	amount, err := ledger.ParseAmount(line)
	switch {
	case errors.Is(err, ledger.ErrNotPositive):
		fmt.Fprintln(s.out, "[ERROR] Amount must be positive.")
		return nil
	case err != nil:
		fmt.Fprintln(s.out, "[ERROR] Invalid amount. Please enter a number.")
		return nil
	}

	tx, err := s.ledger.Append(s.kind, s.description, amount)
	var werr *ledger.WriteError
	if err != nil && !errors.As(err, &werr) {
		fmt.Fprintf(s.out, "[ERROR] %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "\n[SUCCESS] %s of %s added.\n", tx.Kind.Title(), s.money.Format(tx.Amount))
	s.reportSave(err)

	s.kind, s.description = "", ""
	s.state = StateMenu
	return nil
}

func (s *Session) reportSave(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "\n[ERROR] Failed to save data: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "\n[INFO] Data saved to %s.\n", s.ledger.Path())
}

// readLine prints prompt and returns the next trimmed input line, or io.EOF
// once input is exhausted. Lines have no length limit; a final line without
// a newline is still returned.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(s.out)
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}
