package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/olog"
)

var logbookOwner string

var logbooksCmd = &cobra.Command{
	Use:   "logbooks",
	Short: "Manage logbooks",
}

var logbooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all logbooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		logbooks, err := client.GetLogbooks(cmd.Context())
		if err != nil {
			return err
		}
		for _, lb := range logbooks {
			fmt.Printf("• %s", lb.Name)
			if lb.Owner != "" {
				fmt.Printf(" (owner: %s)", lb.Owner)
			}
			if lb.State != olog.StateActive {
				fmt.Printf(" [%s]", lb.State)
			}
			fmt.Println()
		}
		return nil
	},
}

var logbooksGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a logbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logbook, err := client.GetLogbook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(logbook)
	},
}

var logbooksCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a logbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := client.CreateLogbook(cmd.Context(), olog.Logbook{
			Name:  args[0],
			Owner: logbookOwner,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var logbooksDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a logbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.DeleteLogbook(cmd.Context(), args[0])
	},
}

func init() {
	logbooksCreateCmd.Flags().StringVar(&logbookOwner, "owner", "", "logbook owner")

	logbooksCmd.AddCommand(logbooksListCmd)
	logbooksCmd.AddCommand(logbooksGetCmd)
	logbooksCmd.AddCommand(logbooksCreateCmd)
	logbooksCmd.AddCommand(logbooksDeleteCmd)
	rootCmd.AddCommand(logbooksCmd)
}
