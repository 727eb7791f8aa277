package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/adapter"
	"github.com/katalvlaran/patterns/builder"
	"github.com/katalvlaran/patterns/facade"
	"github.com/katalvlaran/patterns/factory"
	"github.com/katalvlaran/patterns/internal/logger"
	"github.com/katalvlaran/patterns/pubsub"
	"github.com/katalvlaran/patterns/singleton"
	"github.com/katalvlaran/patterns/strategy"
)

// demo is one runnable pattern illustration.
type demo struct {
	name  string
	short string
	run   func(w io.Writer) error
}

// demos lists the flagless illustrations alphabetically. The iterator demo
// takes flags and is registered separately; `all` slots it in before pubsub.
var demos = []demo{
	{"adapter", "MP3 player that plays VLC through an adapter", adapter.Demo},
	{"builder", "Director assembling gaming and workstation PCs", builder.Demo},
	{"facade", "Smart home scenes over three devices", facade.Demo},
	{"factory", "Pizza stores choosing which pizza to create", factory.Demo},
	{"pubsub", "Investors notified of stock price changes", pubsub.Demo},
	{"singleton", "One explicitly initialized process-wide logger", singleton.Demo},
	{"strategy", "Payments through interchangeable strategies", strategy.Demo},
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func()

	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "Narrated design pattern demos",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cleanup = logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(newIteratorCmd())
	for _, d := range demos {
		cmd.AddCommand(newDemoCmd(d))
	}
	cmd.AddCommand(newAllCmd())

	return cmd
}

func newDemoCmd(d demo) *cobra.Command {
	return &cobra.Command{
		Use:   d.name,
		Short: d.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), d)
		},
	}
}

// runDemo runs d with start/done log records around it.
func runDemo(w io.Writer, d demo) error {
	log := logger.L().With("demo", d.name)
	log.Debug("demo.start")
	if err := d.run(w); err != nil {
		log.Error("demo.failed", "err", err)
		return fmt.Errorf("%s: %w", d.name, err)
	}
	log.Debug("demo.done")

	return nil
}
