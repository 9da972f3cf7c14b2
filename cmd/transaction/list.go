package transaction

import (
	"context"

	"github.com/hance08/tally/cmd/lookup"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	lookup.Flags
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List a user's raw transactions",
		Long: `List the transactions of a user exactly as stored, newest first.

Unlike report, every status is shown and no balance is computed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags.Register(cmd)
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to display (0 for all)")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	u, err := r.flags.FindUser(ctx, r.svc)
	if err != nil {
		return err
	}

	txs, err := r.svc.Transaction.ListTransactions(ctx, u.ProfileID)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Showing transactions for %s\n\n", u.FullName())
	return views.NewTransactionListView().Render(txs, r.flags.Limit)
}
