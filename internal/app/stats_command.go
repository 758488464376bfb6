package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/stats"
	"fastj/pkg/fastj"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "stats [FILE...]",
		Short: "Summarize records, residues, and metadata keys per input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("style") {
				style = cfg.Stats.Style
			}
			if _, ok := stats.Styles[style]; !ok {
				return usageErrorf("invalid --style %q", style)
			}

			var list []*stats.Summary
			err = forEachInput(cmd.Context(), args, func(name string, r io.Reader) error {
				s := stats.New(name)
				list = append(list, s)
				_, err := copyRecords(cmd, fastj.NewReader(r), name, func(rec fastj.Record) error {
					s.Add(rec)
					return nil
				})
				return err
			})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), stats.Render(list, style)); err != nil {
				return &ioError{err: fmt.Errorf("write output: %w", err)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "rounded", "table style: ascii | light | rounded | double | bold")
	return cmd
}
