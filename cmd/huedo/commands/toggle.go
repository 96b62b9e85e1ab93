package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/pkg/hue"
)

// newToggleCommand creates the toggle command. An argument that parses
// as an integer is treated as a light id; anything else is looked up as
// a configured group name.
func newToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <light_id|group_name>",
		Short: "Toggle a light or a configured light group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)

			if id, err := strconv.Atoi(args[0]); err == nil {
				if err := c.ToggleLight(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to toggle light %d: %w", id, err)
				}
				return nil
			}

			if err := c.ToggleGroup(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to toggle group %q: %w", args[0], err)
			}
			return nil
		},
	}
}
