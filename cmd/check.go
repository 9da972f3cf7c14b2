package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/hance08/tally/cmd/lookup"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	lookup.Flags
	JSON bool
}

type checkRunner struct {
	svc   *service.Service
	flags *checkFlags
}

func NewCheckCmd(svc *service.Service) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Tell whether a user has transactions to report",
		Long: `Count every transaction of the user, whatever its status. Pending,
declined and expired transactions count even though a report never shows them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &checkRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the result as JSON")

	return cmd
}

type checkOutput struct {
	HasTransactions  bool `json:"hasTransactions"`
	TransactionCount int  `json:"transactionCount"`
}

func (r *checkRunner) Run(ctx context.Context) error {
	u, err := r.flags.FindUser(ctx, r.svc)
	if err != nil {
		return err
	}

	res, err := r.svc.Ledger.CheckTransactions(ctx, u)
	if err != nil {
		return err
	}

	if r.flags.JSON {
		return json.NewEncoder(os.Stdout).Encode(checkOutput{
			HasTransactions:  res.HasTransactions,
			TransactionCount: res.TransactionCount,
		})
	}

	views.RenderTransactionCheck(u, res)
	return nil
}
