package transaction

import (
	"context"

	"github.com/hance08/tally/cmd/lookup"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	lookup.Flags
	Amount    string
	Currency  string
	Type      string
	Status    string
	Timestamp string
	Related   int64
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a raw transaction for a user",
		Long: `Record a raw transaction for a user.

The amount is always positive; the transaction type decides whether it adds to
or subtracts from the balance. Types that exist in both directions take a
suffix: "Send Money-" for money sent, "Send Money+" for money received.

Examples:
  # Interactive mode
  tally transaction add

  # Quick mode with flags
  tally tx add -u jane@example.com -b email --amount 10 --currency Cash --type Deposit
  tally tx add -u 1 -b userId --amount 2.5 --currency Cash --type "Send Money-" --related 2 --status Pending`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}

	flags.Register(cmd)
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 0.00012)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency (e.g., Cash, Bitcoin)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type (e.g., Deposit, \"Send Money-\")")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Transaction status (default Completed)")
	cmd.Flags().StringVar(&flags.Timestamp, "date", "", "Transaction date (YYYY-MM-DD or RFC 3339), default is now")
	cmd.Flags().Int64Var(&flags.Related, "related", 0, "User id of the other party of a transfer")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	u, err := r.flags.FindUser(ctx, r.svc)
	if err != nil {
		return err
	}

	// Check if using flag mode or interactive mode
	hasFlags := r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("type")
	if !hasFlags {
		if err := r.interactive(ctx); err != nil {
			return err
		}
	}
	if r.flags.Status == "" {
		r.flags.Status = constants.StatusCompleted
	}

	id, err := r.svc.Transaction.AddTransaction(ctx, service.TransactionInput{
		ProfileID:        u.ProfileID,
		Timestamp:        r.flags.Timestamp,
		Amount:           r.flags.Amount,
		Currency:         r.flags.Currency,
		Type:             r.flags.Type,
		Status:           r.flags.Status,
		RelatedProfileID: r.flags.Related,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d recorded for %s\n", id, u.FullName())
	return nil
}

func (r *addRunner) interactive(ctx context.Context) error {
	lookups, err := r.svc.Transaction.GetLookups(ctx)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(lookups.Types))
	for _, t := range lookups.Types {
		labels = append(labels, service.TypeLabel(t, lookups.Types))
	}

	f := r.flags
	if f.Type, err = prompts.PromptTransactionType(labels); err != nil {
		return err
	}
	if f.Amount, err = prompts.PromptTransactionAmount(); err != nil {
		return err
	}
	if f.Currency == "" {
		if f.Currency, err = prompts.PromptCurrency(lookups.Currencies); err != nil {
			return err
		}
	}
	if f.Status == "" {
		if f.Status, err = prompts.PromptTransactionStatus(lookups.Statuses); err != nil {
			return err
		}
	}
	if f.Timestamp == "" {
		if f.Timestamp, err = prompts.PromptTransactionDate(); err != nil {
			return err
		}
	}
	if f.Related == 0 && service.IsTransferType(f.Type) {
		related, err := prompts.PromptInput("User id of the other party:", "", optionalProfileID)
		if err != nil {
			return err
		}
		if related != "" {
			if f.Related, err = validation.ParseProfileID(related); err != nil {
				return err
			}
		}
	}
	return nil
}

func optionalProfileID(s string) error {
	if s == "" {
		return nil
	}
	_, err := validation.ParseProfileID(s)
	return err
}
