package app

import (
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/version"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags, stderr)

	rootCmd := &cobra.Command{
		Use:   "fastj [FILE...]",
		Short: "Read, normalize, and convert FASTJ files",
		Long: `fastj reads FASTA files whose title lines carry JSON metadata:

  >sequenceA {"date":"2017-05-04","virus":"flu"}
  ATCG

With FILE arguments and no command it prints each record in canonical form
(same as 'fastj format'). FILE may be '-' for stdin, a gzip file, or a glob.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFormat(cmd, ctx, args)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "configuration file path (default $FASTJ_CONFIG or ~/.config/fastj/config.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug | info | warn | error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: console | json")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(newFormatCommand(ctx))
	rootCmd.AddCommand(newToJSONCommand(ctx))
	rootCmd.AddCommand(newFromJSONCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
