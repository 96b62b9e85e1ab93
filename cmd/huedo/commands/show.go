package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/internal/errors"
	"github.com/wsmith/huedo/pkg/hue"
)

// newShowCommand creates the show command
func newShowCommand() *cobra.Command {
	var parseable bool
	cmd := &cobra.Command{
		Use:   "show <light_id>",
		Short: "Show the details of a single light",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidInputf("light id must be an integer, got %q", args[0])
			}

			light, err := c.GetLight(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get light %d: %w", id, err)
			}

			if parseable {
				fmt.Println(lightParseable(args[0], light))
				return nil
			}

			return renderTable(lightDetailData(light), false)
		},
	}
	cmd.Flags().BoolVarP(&parseable, "parseable", "p", false, "Output in parseable format (key=value)")
	return cmd
}
