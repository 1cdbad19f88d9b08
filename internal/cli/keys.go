package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mortar/internal/fixture"
	"mortar/internal/solver"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <model-file>",
		Short: "Print the solver key derived for each constraint",
		Long: `Print the solver key derived for each constraint in a model file.

Keys identify constraints inside the solver independently of tuning values,
so retuned constraints replace their earlier registration instead of piling
up. Use this to see which declarations would collide.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, args[0])
		},
	}
}

func runKeys(cmd *cobra.Command, path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY")
	for _, cd := range doc.Constraints {
		c, err := cd.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", cd.ID, solver.ConstraintKey(c))
	}
	return w.Flush()
}
