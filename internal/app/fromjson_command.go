package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/convert"
	"fastj/internal/writers"
)

func newFromJSONCommand(ctx *commandContext) *cobra.Command {
	var assignIDs bool
	cmd := &cobra.Command{
		Use:   "from-json [FILE...]",
		Short: "Convert a JSON array or NDJSON documents to FASTJ",
		Long: `Convert {"id", "metadata", "sequence"} documents to canonical FASTJ. The
input may be a single JSON array or newline-delimited documents; the layout
is detected from the first non-space character.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("assign-ids") {
				assignIDs = cfg.Convert.AssignIDs
			}

			w, err := writers.New(writers.FormatFASTJ, cmd.OutOrStdout(), writers.Options{})
			if err != nil {
				return err
			}
			log := ctx.log("from-json")
			runErr := forEachInput(cmd.Context(), args, func(name string, r io.Reader) error {
				dec := convert.NewDecoder(r)
				assigned := 0
				for rec, err := range dec.All() {
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					if err := cmd.Context().Err(); err != nil {
						return err
					}
					if assignIDs {
						before := rec.ID
						rec = convert.AssignID(rec)
						if rec.ID != before {
							assigned++
						}
					}
					if err := w.Write(rec); err != nil {
						return writeErr(name, dec.Count(), err)
					}
				}
				log.Debug("converted input", "input", name, "records", dec.Count(), "assigned_ids", assigned)
				return nil
			})
			return finish(w, runErr)
		},
	}
	cmd.Flags().BoolVar(&assignIDs, "assign-ids", false, "give records with an empty id a random UUID")
	return cmd
}
