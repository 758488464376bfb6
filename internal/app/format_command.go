package app

import (
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/writers"
	"fastj/pkg/fastj"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "format [FILE...]",
		Aliases: []string{"cat"},
		Short:   "Print FASTJ records in canonical form",
		Long: `Read FASTJ records and print each in canonical form: metadata keys sorted,
compact JSON, the whole sequence on one line. Without FILE, reads stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, ctx, args)
		},
	}
}

func runFormat(cmd *cobra.Command, ctx *commandContext, args []string) error {
	log := ctx.log("format")
	w, err := writers.New(writers.FormatFASTJ, cmd.OutOrStdout(), writers.Options{})
	if err != nil {
		return err
	}
	runErr := forEachInput(cmd.Context(), args, func(name string, r io.Reader) error {
		n, err := copyRecords(cmd, fastj.NewReader(r), name, w.Write)
		log.Debug("formatted input", "input", name, "records", n)
		if err == nil && n == 0 {
			log.Warn("no records found", "input", name)
		}
		return err
	})
	return finish(w, runErr)
}

// copyRecords hands each record from fr to write and returns how many were
// written.
func copyRecords(cmd *cobra.Command, fr *fastj.Reader, name string, write func(fastj.Record) error) (int, error) {
	n := 0
	for fr.Next() {
		if err := cmd.Context().Err(); err != nil {
			return n, err
		}
		if err := write(fr.Record()); err != nil {
			return n, writeErr(name, n+1, err)
		}
		n++
	}
	if err := fr.Err(); err != nil {
		return n, readErr(name, n+1, err)
	}
	return n, nil
}
