package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints raw records, every status included. Amounts keep their
// stored text.
func (v *TransactionListView) Render(txs []model.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Currency", "Amount", "Status", "Related"},
	}

	for _, tx := range txs {
		currency := tx.Currency
		if currency == "" {
			currency = pterm.Gray(constants.UnknownCurrency)
		}

		typ := tx.TypeDescription
		if typ == "" {
			typ = constants.MissingDescription
		}

		amount := tx.Amount
		switch {
		case tx.TypeFactor < 0:
			amount = pterm.Red(amount)
		case tx.TypeFactor > 0:
			amount = pterm.Green(amount)
		}

		related := "-"
		if tx.RelatedProfileID != nil {
			related = fmt.Sprintf("%d", *tx.RelatedProfileID)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Timestamp.UTC().Format(constants.DateFormat + " " + constants.TimeFormat),
			typ,
			currency,
			amount,
			colorStatus(tx.Status),
			related,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}

func colorStatus(status string) string {
	switch status {
	case constants.StatusCompleted, constants.StatusAuthorize:
		return pterm.Green(status)
	case constants.StatusPending:
		return pterm.Yellow(status)
	case "":
		return pterm.Gray("-")
	default:
		return pterm.Gray(status)
	}
}
