package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/budget/internal/model"
)

const (
	summaryWidth = 40
	historyWidth = 60
	dayFormat    = "2006-01-02"
)

// EmptyHistory is printed instead of the table when there are no transactions.
const EmptyHistory = "[INFO] No transactions recorded yet."

// WriteSummary writes the boxed income/expense/balance report.
func WriteSummary(w io.Writer, s model.Summary, f *Formatter) error {
	var b strings.Builder
	rule := strings.Repeat("=", summaryWidth)

	b.WriteString("\n" + rule + "\n")
	b.WriteString(center("MONTHLY BUDGET SUMMARY", summaryWidth) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-20s %19s\n", "Total Income:", f.Format(s.TotalIncome))
	fmt.Fprintf(&b, "%-20s -%18s\n", "Total Expenses:", f.Format(s.TotalExpenses))
	b.WriteString(strings.Repeat("-", summaryWidth) + "\n")
	fmt.Fprintf(&b, "%-20s %19s\n", "Current Balance:", f.Format(s.Balance))
	fmt.Fprintf(&b, "%-20s %19s\n", "Status:", s.Status())
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHistory writes txs as a table in the order given, or the empty-state
// notice when txs is empty. Only the day part of each timestamp is shown.
func WriteHistory(w io.Writer, txs []model.Transaction, f *Formatter) error {
	if len(txs) == 0 {
		_, err := io.WriteString(w, "\n"+EmptyHistory+"\n")
		return err
	}

	var b strings.Builder
	rule := strings.Repeat("*", historyWidth)

	b.WriteString("\n" + rule + "\n")
	b.WriteString(center("TRANSACTION HISTORY", historyWidth) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-20s %-10s %-12s %s\n", "DATE", "TYPE", "AMOUNT", "DESCRIPTION")
	b.WriteString(strings.Repeat("-", historyWidth) + "\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "%-20s %-10s %-12s %s\n",
			tx.Timestamp.Format(dayFormat),
			strings.ToUpper(string(tx.Kind)),
			f.Format(tx.Amount),
			tx.Description,
		)
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}
