package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/internal/errors"
)

// NewGroupCommand creates the group command. Light groups live in the
// config file only; the bridge is never consulted.
func NewGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage light groups in the config file",
	}

	cmd.AddCommand(
		newGroupAddCommand(),
		newGroupRemoveCommand(),
		newGroupListCommand(),
	)

	return cmd
}

// newGroupAddCommand creates the group add command
func newGroupAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <light_id>...",
		Short: "Create or replace a light group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmd.Context().Value(ConfigContextKey).(*config.Config)

			lights := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return errors.InvalidInputf("light id must be an integer, got %q", arg)
				}
				lights = append(lights, id)
			}

			if err := cfg.SetGroup(args[0], lights); err != nil {
				return fmt.Errorf("failed to save group: %w", err)
			}

			pterm.Success.Printfln("Saved group %s with %d light(s)", args[0], len(lights))
			return nil
		},
	}
}

// newGroupRemoveCommand creates the group remove command
func newGroupRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a light group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmd.Context().Value(ConfigContextKey).(*config.Config)

			if err := cfg.RemoveGroup(args[0]); err != nil {
				return fmt.Errorf("failed to remove group: %w", err)
			}

			pterm.Success.Printfln("Removed group %s", args[0])
			return nil
		},
	}
}

// newGroupListCommand creates the group list command
func newGroupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured light groups",
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
