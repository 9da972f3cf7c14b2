package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	rules, err := service.RulesFromConfig(cfg.Ledger)
	if err != nil {
		return err
	}

	currencies := append([]string(nil), cfg.Report.Currencies...)
	for _, rc := range cfg.Ledger.Rounding {
		currencies = append(currencies, rc.Currency)
	}
	seen := make(map[string]bool)
	var rounding []string
	sort.Strings(currencies)
	for _, c := range currencies {
		if seen[c] {
			continue
		}
		seen[c] = true
		rule := rules.For(c)
		rounding = append(rounding, fmt.Sprintf("%s: %d places, %s", c, rule.Places, rule.Mode))
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		DBPath:     r.app.DBPath,
		DBExists:   dbExists,
		AppDataDir: getAppDataDirOrUnknown(),
		LogLevel:   cfg.Log.Level,
		Currencies: cfg.Report.Currencies,
		Rounding:   rounding,
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
