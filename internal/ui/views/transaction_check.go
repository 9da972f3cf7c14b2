package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/pterm/pterm"
)

func RenderTransactionCheck(u *model.User, res *service.CheckResult) {
	if !res.HasTransactions {
		pterm.Warning.Printf("%s has no transactions\n", u.FullName())
		return
	}
	pterm.Success.Printf("%s has %d transactions\n", u.FullName(), res.TransactionCount)
}
