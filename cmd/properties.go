package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/olog"
)

var (
	propertyOwner   string
	propertyAttrs   []string
	includeInactive bool
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Manage properties",
}

var propertiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		properties, err := client.GetProperties(cmd.Context(), includeInactive)
		if err != nil {
			return err
		}
		for _, prop := range properties {
			attrs := make([]string, 0, len(prop.Attributes))
			for _, attr := range prop.Attributes {
				attrs = append(attrs, attr.Name)
			}
			fmt.Printf("• %s", prop.Name)
			if len(attrs) > 0 {
				fmt.Printf(" (%s)", strings.Join(attrs, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var propertiesGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		property, err := client.GetProperty(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(property)
	},
}

var propertiesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a property",
	Long: `Create a property with the given attribute names, e.g.:

  ologctl properties create Shift --attr operator --attr crew`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		property := olog.Property{
			Name:  args[0],
			Owner: propertyOwner,
		}
		for _, name := range propertyAttrs {
			property.Attributes = append(property.Attributes, olog.Attribute{
				Name:  name,
				State: olog.StateActive,
			})
		}
		created, err := client.CreateProperty(cmd.Context(), property)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var propertiesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.DeleteProperty(cmd.Context(), args[0])
	},
}

func init() {
	propertiesListCmd.Flags().BoolVar(&includeInactive, "inactive", false, "include inactive properties")
	propertiesCreateCmd.Flags().StringVar(&propertyOwner, "owner", "", "property owner")
	propertiesCreateCmd.Flags().StringArrayVar(&propertyAttrs, "attr", nil, "attribute name (repeatable)")

	propertiesCmd.AddCommand(propertiesListCmd)
	propertiesCmd.AddCommand(propertiesGetCmd)
	propertiesCmd.AddCommand(propertiesCreateCmd)
	propertiesCmd.AddCommand(propertiesDeleteCmd)
	rootCmd.AddCommand(propertiesCmd)
}
