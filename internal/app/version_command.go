package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"fastj/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the fastj version",
		Args:        noArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "fastj version %s\n", version.Version)
			return err
		},
	}
}
