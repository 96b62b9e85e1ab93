package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/internal/errors"
	"github.com/wsmith/huedo/pkg/hue"
)

// newSetCommand creates the set command. Only the flags the user
// actually passed end up in the state update; with no flags at all the
// command is a no-op and performs no bridge call.
func newSetCommand() *cobra.Command {
	var state string
	var hueVal, brightness, saturation int

	cmd := &cobra.Command{
		Use:   "set <light_id>",
		Short: "Set the state of a single light",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidInputf("light id must be an integer, got %q", args[0])
			}

			var update hue.StateUpdate
			if cmd.Flags().Changed("state") {
				switch state {
				case "on":
					on := true
					update.On = &on
				case "off":
					on := false
					update.On = &on
				default:
					return errors.InvalidInputf("state must be \"on\" or \"off\", got %q", state)
				}
			}
			if cmd.Flags().Changed("hue") {
				update.Hue = &hueVal
			}
			if cmd.Flags().Changed("brightness") {
				update.Brightness = &brightness
			}
			if cmd.Flags().Changed("saturation") {
				update.Saturation = &saturation
			}

			if err := c.SetLightState(cmd.Context(), id, update); err != nil {
				return fmt.Errorf("failed to set light state: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Power state (on|off)")
	cmd.Flags().IntVar(&hueVal, "hue", 0, "Hue (0-65535)")
	cmd.Flags().IntVar(&brightness, "brightness", 0, "Brightness (1-254)")
	cmd.Flags().IntVar(&saturation, "saturation", 0, "Saturation (0-254)")
	return cmd
}
