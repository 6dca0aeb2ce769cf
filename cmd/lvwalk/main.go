// Command lvwalk serves the graph traversal visualizer and runs scripted
// traversals from the terminal.
//
//	lvwalk serve --config lvwalk.yaml --addr :8080
//	lvwalk run --graph scenario.yaml --algorithm dfs --start A
//	lvwalk classify --graph scenario.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvwalk:", err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "lvwalk",
		Short:         "Step-by-step BFS and DFS over hand-drawn graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML settings file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level from the settings")

	root.AddCommand(newServeCmd(opts), newRunCmd(opts), newClassifyCmd(opts))

	return root
}

// load reads the settings and applies flag overrides.
func (o *rootOptions) load() (config.Settings, error) {
	st, err := config.Load(o.configPath)
	if err != nil {
		return st, err
	}
	if o.logLevel != "" {
		st.Log.Level = o.logLevel
		if err := st.Validate(); err != nil {
			return st, err
		}
	}

	return st, nil
}

// newLogger writes logs to w, which is stderr for every command.
func newLogger(st config.Settings, w io.Writer) *slog.Logger {
	return config.NewLogger(st.Log, w)
}

// newClassifier returns the remote client when an endpoint is configured and
// the structural classifier otherwise.
func newClassifier(st config.Settings, logger *slog.Logger) classify.Classifier {
	cs := st.Classifier
	if cs.Endpoint == "" {
		return classify.Structural{}
	}

	return classify.NewClient(cs.Endpoint,
		classify.WithTimeout(cs.Timeout),
		classify.WithRateLimit(cs.RatePerSecond, cs.Burst),
		classify.WithClientLogger(logger),
	)
}
