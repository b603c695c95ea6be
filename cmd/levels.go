package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/olog"
)

var defaultLevel bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage levels",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, err := client.GetLevels(cmd.Context())
		if err != nil {
			return err
		}
		for _, level := range levels {
			fmt.Printf("• %s", level.Name)
			if level.DefaultLevel {
				fmt.Printf(" (default)")
			}
			fmt.Println()
		}
		return nil
	},
}

var levelsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := client.GetLevel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(level)
	},
}

var levelsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := client.CreateLevel(cmd.Context(), olog.Level{
			Name:         args[0],
			DefaultLevel: defaultLevel,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.DeleteLevel(cmd.Context(), args[0])
	},
}

func init() {
	levelsCreateCmd.Flags().BoolVar(&defaultLevel, "default", false, "mark as the default level")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsGetCmd)
	levelsCmd.AddCommand(levelsCreateCmd)
	levelsCmd.AddCommand(levelsDeleteCmd)
	rootCmd.AddCommand(levelsCmd)
}
