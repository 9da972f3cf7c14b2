package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

type LedgerService struct {
	repo   store.Repository
	config *config.Config
	ledger *ledger.Ledger
}

func NewLedgerService(repo store.Repository, cfg *config.Config) (*LedgerService, error) {
	rules, err := RulesFromConfig(cfg.Ledger)
	if err != nil {
		return nil, err
	}

	var opts []ledger.Option
	if cfg.Ledger.PrefetchLimit > 0 {
		opts = append(opts, ledger.WithPrefetchLimit(cfg.Ledger.PrefetchLimit))
	}

	return &LedgerService{
		repo:   repo,
		config: cfg,
		ledger: ledger.New(rules, opts...),
	}, nil
}

// RulesFromConfig layers the configured per-currency rules over the defaults.
func RulesFromConfig(lc config.LedgerConfig) (ledger.Rules, error) {
	rules := ledger.DefaultRules()
	for _, rc := range lc.Rounding {
		if rc.Currency == "" {
			return ledger.Rules{}, fmt.Errorf("rounding rule without currency")
		}
		if rc.Places < 0 {
			return ledger.Rules{}, fmt.Errorf("rounding for %s: places must not be negative", rc.Currency)
		}
		mode, err := ledger.ParseRoundingMode(rc.Mode)
		if err != nil {
			return ledger.Rules{}, fmt.Errorf("rounding for %s: %w", rc.Currency, err)
		}
		rules = rules.With(rc.Currency, ledger.Rule{Places: rc.Places, Mode: mode})
	}
	return rules, nil
}

// BalanceLine is one entry of the balance summary.
type BalanceLine struct {
	Currency string
	Balance  string
}

type UserReport struct {
	User    *model.User
	Report  *ledger.Report
	Summary []BalanceLine
}

// CheckResult tells whether a user has any transaction, whatever its status.
type CheckResult struct {
	HasTransactions  bool
	TransactionCount int
}

// BuildReport reconstructs the per-currency history of a user.
func (ls *LedgerService) BuildReport(ctx context.Context, user *model.User) (*UserReport, error) {
	txs, err := ls.repo.GetTransactionsByProfile(ctx, user.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	ctx = logger.WithContext(ctx, logger.FromContext(ctx).With().Int64("profile_id", user.ProfileID).Logger())

	report, err := ls.ledger.Build(ctx, txs, ls.Resolver())
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return &UserReport{
		User:    user,
		Report:  report,
		Summary: ls.summarize(report),
	}, nil
}

// CheckTransactions counts every transaction of user, displayed or not.
func (ls *LedgerService) CheckTransactions(ctx context.Context, user *model.User) (*CheckResult, error) {
	ur, err := ls.BuildReport(ctx, user)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		HasTransactions:  ur.Report.HasTransactions(),
		TransactionCount: ur.Report.EntryCount(),
	}, nil
}

// Resolver looks related parties up in the store.
func (ls *LedgerService) Resolver() ledger.NameResolver {
	return ledger.ResolverFunc(func(ctx context.Context, profileID int64) (string, error) {
		first, last, err := ls.repo.GetProfileName(ctx, profileID)
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", fmt.Errorf("profile %d: %w", profileID, ledger.ErrUnresolvedRelatedParty)
		}
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(first + " " + last), nil
	})
}

// summarize lists the configured currencies first, then any other currency
// the report holds, in first-seen order.
func (ls *LedgerService) summarize(report *ledger.Report) []BalanceLine {
	seen := make(map[string]bool)
	lines := make([]BalanceLine, 0, len(ls.config.Report.Currencies)+len(report.Currencies))

	for _, c := range ls.config.Report.Currencies {
		if seen[c] {
			continue
		}
		seen[c] = true
		lines = append(lines, BalanceLine{Currency: c, Balance: report.FormatBalance(c)})
	}
	for _, c := range report.Currencies {
		if seen[c] {
			continue
		}
		seen[c] = true
		lines = append(lines, BalanceLine{Currency: c, Balance: report.FormatBalance(c)})
	}
	return lines
}
