package views

import (
	"fmt"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

// RenderLedgerReport prints the user header, the balance summary, then one
// table per currency, newest row first.
func RenderLedgerReport(ur *service.UserReport) error {
	ui.PrintL1Title("Transaction Report")
	pterm.Println()

	if err := RenderUserDetails(ur.User); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Current Balances")
	balanceData := pterm.TableData{{"Currency", "Balance"}}
	for _, line := range ur.Summary {
		balanceData = append(balanceData, []string{line.Currency, line.Balance})
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithRightAlignment().
		WithData(balanceData).
		Render(); err != nil {
		return err
	}

	report := ur.Report
	if report.RowCount() == 0 {
		pterm.Println()
		pterm.Warning.Println("No completed or authorized transactions found")
		return nil
	}

	for _, currency := range report.Currencies {
		rows := report.Rows[currency]
		if len(rows) == 0 {
			continue
		}

		pterm.Println()
		ui.PrintL2Title("%s Transactions", currency)
		if err := renderRows(rows); err != nil {
			return err
		}
	}

	pterm.Println()
	pterm.Info.Printf("Report %s: %d rows from %d transactions\n", report.ID, report.RowCount(), report.EntryCount())
	return nil
}

func renderRows(rows []ledger.Row) error {
	tableData := pterm.TableData{
		{"Date", "Time", "Description", "Debit", "Credit", "Status", "Balance"},
	}

	for _, row := range rows {
		debit := row.DebitString()
		if debit != "" {
			debit = pterm.Red(debit)
		}
		credit := row.CreditString()
		if credit != "" {
			credit = pterm.Green(credit)
		}

		tableData = append(tableData, []string{
			row.Date(),
			row.Time(),
			row.Description,
			debit,
			credit,
			row.Status,
			pterm.Bold.Sprint(row.BalanceString()),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderUserDetails(u *model.User) error {
	tableData := pterm.TableData{
		{pterm.Blue("Name"), u.FullName()},
		{pterm.Blue("User ID"), fmt.Sprintf("%d", u.ProfileID)},
		{pterm.Blue("Email"), orNone(u.Email)},
		{pterm.Blue("Phone"), orNone(u.Phone)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
