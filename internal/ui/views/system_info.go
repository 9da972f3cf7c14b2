package views

import (
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath string
	DBPath     string
	DBExists   bool // true = Found, false = Not Found
	AppDataDir string
	LogLevel   string
	Currencies []string
	Rounding   []string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"AppData Directory", data.AppDataDir},
		{"Log Level", data.LogLevel},
		{"Report Currencies", strings.Join(data.Currencies, ", ")},
	}
	for _, r := range data.Rounding {
		tableData = append(tableData, []string{"Rounding", r})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
