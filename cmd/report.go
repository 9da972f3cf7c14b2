package cmd

import (
	"context"

	"github.com/hance08/tally/cmd/lookup"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type reportRunner struct {
	svc   *service.Service
	flags *lookup.Flags
}

func NewReportCmd(svc *service.Service) *cobra.Command {
	flags := &lookup.Flags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a user's balances and per-currency transaction history",
		Long: `Show the current balance of every currency followed by one table per
currency, newest first, with the running balance after each completed or
authorized transaction.

Examples:
  tally report --user jane@example.com --by email
  tally report -u "+1 555 0100" -b phone
  tally report -u 42 -b userId`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags.Register(cmd)

	return cmd
}

func (r *reportRunner) Run(ctx context.Context) error {
	u, err := r.flags.FindUser(ctx, r.svc)
	if err != nil {
		return err
	}

	ur, err := r.svc.Ledger.BuildReport(ctx, u)
	if err != nil {
		return err
	}

	return views.RenderLedgerReport(ur)
}
