// Package main provides the rask-compiler command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/christianalfoni/rask-ui/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	log        *zap.Logger
	configFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "rask-compiler",
		Short: "Rewrites rask-ui function components into component classes",
		Long: `rask-compiler rewrites function components in JSX-lowered JavaScript into
classes extending the rask-ui runtime base classes.

Commands:
  transform  Rewrite files or stdin and print, write or diff the result
  serve      Answer compile requests from a host process over stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			log, err := logging.New(a.v.GetBool(keyDebug))
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			// Sync on a terminal stderr fails with EINVAL on some platforms.
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./"+configName+".yaml when present)")
	flags.Bool("debug", false, "log debug output to stderr")
	flags.String("import-source", "", `package the runtime base classes are imported from (default "rask-ui")`)

	root.AddCommand(a.transformCmd())
	root.AddCommand(a.serveCmd())
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rask-compiler %s\n", version)
		},
	}
}
