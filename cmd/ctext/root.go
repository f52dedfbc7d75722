package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/engine/theme"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	traceLevel string
	themeFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ctext",
		Short:         "ctext resolves the text styles of nested text markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(flags.traceLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme", "", "Theme file (YAML or TOML) extending the default theme")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newFontsCmd())
	cmd.AddCommand(newThemeCmd(flags))

	return cmd
}

func setTraceLevel(level string) error {
	var apply func(tracing.Trace)
	switch strings.ToLower(level) {
	case "debug":
		apply = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelDebug) }
	case "info":
		apply = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelInfo) }
	case "error":
		apply = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelError) }
	default:
		return core.Error(core.EINVALID, "unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		apply(tracing.Select(key))
	}
	return nil
}

// loadTheme returns the default theme, extended by a theme file if one is given.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

// renderTable renders a table with a header row.
func renderTable(cmd *cobra.Command, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render table")
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
