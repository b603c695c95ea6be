package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/olog"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := client.GetTags(cmd.Context())
		if err != nil {
			return err
		}
		for _, tag := range tags {
			fmt.Printf("• %s", tag.Name)
			if tag.State != olog.StateActive {
				fmt.Printf(" [%s]", tag.State)
			}
			fmt.Println()
		}
		return nil
	},
}

var tagsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := client.GetTag(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(tag)
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := client.CreateTag(cmd.Context(), olog.Tag{Name: args[0]})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.DeleteTag(cmd.Context(), args[0])
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsGetCmd)
	tagsCmd.AddCommand(tagsCreateCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
	rootCmd.AddCommand(tagsCmd)
}
