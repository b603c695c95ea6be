package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/olog"
)

var (
	templateTitle    string
	templateLevel    string
	templateSource   string
	templateLogbooks []string
	templateTags     []string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage log templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := client.GetTemplates(cmd.Context())
		if err != nil {
			return err
		}
		for _, template := range templates {
			fmt.Printf("• %s", template.Name)
			if template.ID != "" {
				fmt.Printf(" (id: %s)", template.ID)
			}
			fmt.Println()
		}
		return nil
	},
}

var templatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := client.GetTemplate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(template)
	},
}

var templatesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template := olog.Template{
			Name:   args[0],
			Title:  templateTitle,
			Level:  templateLevel,
			Source: templateSource,
		}
		for _, name := range templateLogbooks {
			template.Logbooks = append(template.Logbooks, olog.Logbook{Name: name})
		}
		for _, name := range templateTags {
			template.Tags = append(template.Tags, olog.Tag{Name: name})
		}
		created, err := client.CreateTemplate(cmd.Context(), template)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.DeleteTemplate(cmd.Context(), args[0])
	},
}

func init() {
	templatesCreateCmd.Flags().StringVar(&templateTitle, "title", "", "template title (required)")
	templatesCreateCmd.Flags().StringVar(&templateLevel, "level", "", "level name")
	templatesCreateCmd.Flags().StringVar(&templateSource, "source", "", "template source")
	templatesCreateCmd.Flags().StringArrayVar(&templateLogbooks, "logbook", nil, "logbook name (repeatable, at least one required)")
	templatesCreateCmd.Flags().StringArrayVar(&templateTags, "tag", nil, "tag name (repeatable)")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesGetCmd)
	templatesCmd.AddCommand(templatesCreateCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
	rootCmd.AddCommand(templatesCmd)
}
