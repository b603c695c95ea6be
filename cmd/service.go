package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpLanguage string

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Inspect the Olog service",
}

var serviceInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show service information and health",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetServiceInfo(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var serviceConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show service configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := client.GetServiceConfiguration(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(configuration)
	},
}

var serviceHelpCmd = &cobra.Command{
	Use:   "help <topic>",
	Short: "Show service help for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := client.GetHelp(cmd.Context(), args[0], helpLanguage)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	serviceHelpCmd.Flags().StringVar(&helpLanguage, "lang", "en", "help language code")

	serviceCmd.AddCommand(serviceInfoCmd)
	serviceCmd.AddCommand(serviceConfigCmd)
	serviceCmd.AddCommand(serviceHelpCmd)
	rootCmd.AddCommand(serviceCmd)
}
