package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mortar/internal/fixture"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "validate <model-file>",
		Short:        "Validate a building model file without serving it",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}

	walls := 0
	entities := 0
	for _, p := range doc.Perimeters {
		walls += len(p.Walls)
		for _, w := range p.Walls {
			entities += len(w.Entities)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d perimeters, %d walls, %d entities, %d constraints\n",
		path, len(doc.Perimeters), walls, entities, len(doc.Constraints))
	return nil
}
