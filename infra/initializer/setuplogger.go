package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	key   string
	icon  string
	color string
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "error", "❌", "#FF6B6B"},
	{log.WarnLevel, "warn", "⚠️", "#EE6FF8"},
	{log.InfoLevel, "info", "ℹ️", "#04B575"},
	{log.DebugLevel, "debug", "🐛", "#7E57C2"},
}

// accent colors the keys that carry no level of their own.
const accent = "#7E57C2"

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		color := lipgloss.AdaptiveColor{Light: ls.color, Dark: ls.color}
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
		styles.Keys[ls.key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[ls.key] = lipgloss.NewStyle().Bold(true)
	}
	accentColor := lipgloss.AdaptiveColor{Light: accent, Dark: accent}
	for _, key := range []string{"prefix", "caller", "time", "username", "balance"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(accentColor)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// SetupLogger builds the process logger on top of charmbracelet/log, installs
// it as the slog default and returns it. A nil writer means stdout.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(loggerStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
