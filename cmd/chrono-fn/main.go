// chrono-fn exercises the temporal-function core from the command line:
// resolve return types, run transforms over ad-hoc columns and ask for
// monotonicity verdicts the way the planner does.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronosdb/chronos/internal"
)

func main() {
	root := &cobra.Command{
		Use:           "chrono-fn",
		Short:         "Temporal scalar-function playground for the chronos engine core",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "path to a yaml config file")
	root.PersistentFlags().String("timezone", "", "session default timezone (overrides config)")

	addCommands(root)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// sessionTimezone picks the session default: --timezone flag first, then
// the config file, then UTC.
func sessionTimezone(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("timezone"); name != "" {
		return name
	}
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return "UTC"
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		slog.Warn("chrono-fn: config unreadable, falling back to UTC", "path", path, "err", err)
		return "UTC"
	}
	return cfg.Execution.DefaultTimezone
}
