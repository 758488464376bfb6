package app

import (
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/writers"
	"fastj/pkg/fastj"
)

func newToJSONCommand(ctx *commandContext) *cobra.Command {
	var (
		ndjson  bool
		indent  string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "to-json [FILE...]",
		Short: "Convert FASTJ to a JSON array or NDJSON",
		Long: `Convert FASTJ records to JSON documents of the form
{"id": ..., "metadata": ..., "sequence": ...}. All inputs go into one JSON
array, or one document per line with --ndjson. Metadata is null when a
record has none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format := writers.FormatJSON
			if (cfg.JSON.NDJSON && !cmd.Flags().Changed("ndjson")) || ndjson {
				format = writers.FormatNDJSON
			}
			opt := writers.Options{Indent: cfg.JSON.Indent}
			if cmd.Flags().Changed("indent") {
				opt.Indent = indent
			}
			if compact {
				opt.Indent = ""
			}

			w, err := writers.New(format, cmd.OutOrStdout(), opt)
			if err != nil {
				return err
			}
			log := ctx.log("to-json")
			runErr := forEachInput(cmd.Context(), args, func(name string, r io.Reader) error {
				n, err := copyRecords(cmd, fastj.NewReader(r), name, w.Write)
				log.Debug("converted input", "input", name, "records", n, "format", format)
				return err
			})
			return finish(w, runErr)
		},
	}
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "write one JSON document per line")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indent for JSON array output")
	cmd.Flags().BoolVar(&compact, "compact", false, "write the JSON array without indentation")
	return cmd
}
