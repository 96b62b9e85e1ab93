package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/pkg/hue"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lights or light groups",
	}

	cmd.AddCommand(
		newListLightsCommand(),
		newListGroupsCommand(),
	)

	return cmd
}

// newListLightsCommand creates the list lights command
func newListLightsCommand() *cobra.Command {
	var parseable bool
	cmd := &cobra.Command{
		Use:   "lights",
		Short: "List all lights known to the bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context().Value(ClientContextKey).(hue.ClientInterface)
			lights, err := c.GetLights(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get lights: %w", err)
			}

			if len(lights) == 0 {
				if parseable {
					return nil
				}
				pterm.Info.Println("No lights found")
				return nil
			}

			if parseable {
				for _, id := range sortedLightIDs(lights) {
					fmt.Println(lightParseable(id, lights[id]))
				}
				return nil
			}

			return renderTable(lightListData(lights), true)
		},
	}
	cmd.Flags().BoolVarP(&parseable, "parseable", "p", false, "Output in parseable format (key=value)")
	return cmd
}

// newListGroupsCommand creates the list groups command
func newListGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List light groups defined in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmd.Context().Value(ConfigContextKey).(*config.Config)

			if len(cfg.LightGroups) == 0 {
				pterm.Info.Println("No light groups configured")
				return nil
			}

			return renderTable(groupListData(cfg), true)
		},
	}
}
