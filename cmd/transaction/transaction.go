package transaction

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Record and list raw transactions",
		Long:    "Record raw transactions for a user and list them as stored, whatever their status.",
	}

	transactionCmd.AddCommand(NewAddCmd(svc))
	transactionCmd.AddCommand(NewListCmd(svc))

	return transactionCmd
}
