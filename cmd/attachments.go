package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	attachDescription string
	downloadOut       string
	downloadDir       string
	byID              bool
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage file attachments",
}

var attachUploadCmd = &cobra.Command{
	Use:   "upload <log-id> <file>...",
	Short: "Upload files to a log entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logID := args[0]
		paths := args[1:]

		if len(paths) == 1 {
			updated, err := client.UploadAttachment(cmd.Context(), logID, paths[0], attachDescription)
			if err != nil {
				return err
			}
			return printJSON(updated)
		}

		updated, err := client.UploadAttachments(cmd.Context(), logID, paths)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var attachDownloadCmd = &cobra.Command{
	Use:   "download <log-id> <filename>",
	Short: "Download an attachment",
	Long: `Download an attachment from a log entry by filename, or by
attachment ID with --by-id (in which case only one argument is given).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if byID {
			if len(args) != 1 {
				return fmt.Errorf("expected a single attachment ID with --by-id")
			}
			out := downloadOut
			if out == "" {
				out = args[0]
			}
			if err := client.SaveAttachmentByID(cmd.Context(), args[0], out); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", out)
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("expected <log-id> <filename>")
		}
		out := downloadOut
		if out == "" {
			out = filepath.Base(args[1])
		}
		if err := client.SaveAttachment(cmd.Context(), args[0], args[1], out); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", out)
		return nil
	},
}

var attachDownloadAllCmd = &cobra.Command{
	Use:   "download-all <log-id>",
	Short: "Download every attachment of a log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := client.GetLog(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(entry.Attachments) == 0 {
			fmt.Println("No attachments.")
			return nil
		}
		saved, err := client.DownloadAllAttachments(cmd.Context(), *entry, downloadDir)
		for _, path := range saved {
			fmt.Printf("Saved %s\n", path)
		}
		return err
	},
}

func init() {
	attachUploadCmd.Flags().StringVar(&attachDescription, "description", "", "attachment description (single file only)")
	attachDownloadCmd.Flags().StringVarP(&downloadOut, "out", "o", "", "output path")
	attachDownloadCmd.Flags().BoolVar(&byID, "by-id", false, "download by attachment ID")
	attachDownloadAllCmd.Flags().StringVarP(&downloadDir, "dir", "d", ".", "output directory")

	attachCmd.AddCommand(attachUploadCmd)
	attachCmd.AddCommand(attachDownloadCmd)
	attachCmd.AddCommand(attachDownloadAllCmd)
	rootCmd.AddCommand(attachCmd)
}
