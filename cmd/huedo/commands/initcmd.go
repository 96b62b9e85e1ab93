package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/pkg/hue"
)

// newInitCommand creates the init command, which runs the pairing flow
func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init <hub_ip>",
		Short: "Pair with a Hue bridge and store the credentials",
		Long: `Pair with a Hue bridge and store the credentials.

Press the physical link button on the bridge, then run this command
within about 30 seconds. The bridge hands out a long-lived API username
which is written to the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)
			logger := getLoggerFromCmd(cmd)

			user, err := c.CreateUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to pair with bridge: %w", err)
			}

			logger.Debug("pairing succeeded", "hub", args[0], "user", user)
			pterm.Success.Printfln("Paired with bridge %s as %s", args[0], user)
			return nil
		},
	}
}
