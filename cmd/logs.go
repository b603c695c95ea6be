package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligara7/go-olog/filter"
	"github.com/sligara7/go-olog/olog"
)

var (
	searchText    string
	searchLogbook string
	searchTag     string
	searchOwner   string
	searchLevel   string
	searchFrom    string
	searchTo      string
	searchSize    int
	searchStart   int
	filterExpr    string

	logTitle       string
	logDescription string
	logLevel       string
	logLogbooks    []string
	logTags        []string
	logMarkup      string
	logInReplyTo   string
	logAttachments []string

	archived bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage log entries",
}

var logsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search log entries",
	Long: `Search log entries by server-side query parameters, optionally
narrowed further with a client-side filter expression, e.g.:

  ologctl logs search --logbook operations --filter 'hasTag("rf") && daysSince(CreatedAt) < 7'`,
	RunE: runSearch,
}

var logsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var entry *olog.Log
		var err error
		if archived {
			entry, err = client.GetArchivedLog(cmd.Context(), args[0])
		} else {
			entry, err = client.GetLog(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		return printJSON(entry)
	},
}

var logsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a log entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := olog.NewLogEntry{
			Title:       logTitle,
			Description: logDescription,
			Level:       logLevel,
			Logbooks:    logLogbooks,
			Tags:        logTags,
			Markup:      logMarkup,
			InReplyTo:   logInReplyTo,
		}

		var created *olog.Log
		var err error
		if len(logAttachments) > 0 {
			created, err = client.CreateLogWithFiles(cmd.Context(), entry, logAttachments)
		} else {
			created, err = client.CreateLog(cmd.Context(), entry)
		}
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var logsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a log entry",
	Long:  `Update a log entry. Only the fields given as flags are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := olog.LogUpdate{Markup: logMarkup}
		if cmd.Flags().Changed("title") {
			update.Title = &logTitle
		}
		if cmd.Flags().Changed("description") {
			update.Description = &logDescription
		}
		if cmd.Flags().Changed("level") {
			update.Level = &logLevel
		}
		if cmd.Flags().Changed("tag") {
			update.Tags = logTags
		}
		updated, err := client.UpdateLog(cmd.Context(), args[0], update)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var logsGroupCmd = &cobra.Command{
	Use:   "group <id>...",
	Short: "Group log entries together",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid log ID %q", arg)
			}
			ids = append(ids, id)
		}
		return client.GroupLogs(cmd.Context(), ids)
	},
}

func runSearch(cmd *cobra.Command, args []string) error {
	result, err := client.SearchLogs(cmd.Context(), olog.SearchParams{
		Text:    searchText,
		Logbook: searchLogbook,
		Tag:     searchTag,
		Owner:   searchOwner,
		Level:   searchLevel,
		From:    searchFrom,
		To:      searchTo,
		Size:    searchSize,
		Start:   searchStart,
	})
	if err != nil {
		return err
	}

	entries := result.Logs
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		entries, err = f.Apply(entries)
		if err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		fmt.Println("No log entries found.")
		return nil
	}

	fmt.Printf("\nFound %d entries (%d total hits):\n", len(entries), result.HitCount)
	fmt.Println(strings.Repeat("-", 80))
	for _, entry := range entries {
		fmt.Printf("• [%d] %s\n", entry.ID, entry.Title)
		fmt.Printf("  Created: %s  Owner: %s\n", entry.CreatedTime().Format("2006-01-02 15:04"), entry.Owner)
		if len(entry.Logbooks) > 0 {
			fmt.Printf("  Logbooks: %s\n", strings.Join(entry.LogbookNames(), ", "))
		}
		if len(entry.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(entry.TagNames(), ", "))
		}
	}
	return nil
}

func init() {
	logsSearchCmd.Flags().StringVar(&searchText, "text", "", "full text search")
	logsSearchCmd.Flags().StringVar(&searchLogbook, "logbook", "", "logbook name")
	logsSearchCmd.Flags().StringVar(&searchTag, "tag", "", "tag name")
	logsSearchCmd.Flags().StringVar(&searchOwner, "owner", "", "owner name")
	logsSearchCmd.Flags().StringVar(&searchLevel, "level", "", "level name")
	logsSearchCmd.Flags().StringVar(&searchFrom, "from", "", "start date (YYYY-MM-DD)")
	logsSearchCmd.Flags().StringVar(&searchTo, "to", "", "end date (YYYY-MM-DD)")
	logsSearchCmd.Flags().IntVar(&searchSize, "size", 0, "number of results")
	logsSearchCmd.Flags().IntVar(&searchStart, "start", 0, "pagination start index")
	logsSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	logsGetCmd.Flags().BoolVar(&archived, "archived", false, "fetch the archived version")

	logsCreateCmd.Flags().StringVar(&logTitle, "title", "", "entry title (required)")
	logsCreateCmd.Flags().StringVar(&logDescription, "description", "", "entry description")
	logsCreateCmd.Flags().StringVar(&logLevel, "level", "", "level name")
	logsCreateCmd.Flags().StringArrayVar(&logLogbooks, "logbook", nil, "logbook name (repeatable, at least one required)")
	logsCreateCmd.Flags().StringArrayVar(&logTags, "tag", nil, "tag name (repeatable)")
	logsCreateCmd.Flags().StringVar(&logMarkup, "markup", "", "markup scheme for the description")
	logsCreateCmd.Flags().StringVar(&logInReplyTo, "reply-to", "", "ID of the entry this replies to")
	logsCreateCmd.Flags().StringArrayVar(&logAttachments, "attach", nil, "file to attach (repeatable)")

	logsUpdateCmd.Flags().StringVar(&logTitle, "title", "", "new title")
	logsUpdateCmd.Flags().StringVar(&logDescription, "description", "", "new description")
	logsUpdateCmd.Flags().StringVar(&logLevel, "level", "", "new level")
	logsUpdateCmd.Flags().StringArrayVar(&logTags, "tag", nil, "replacement tag (repeatable)")
	logsUpdateCmd.Flags().StringVar(&logMarkup, "markup", "", "markup scheme")

	logsCmd.AddCommand(logsSearchCmd)
	logsCmd.AddCommand(logsGetCmd)
	logsCmd.AddCommand(logsCreateCmd)
	logsCmd.AddCommand(logsUpdateCmd)
	logsCmd.AddCommand(logsGroupCmd)
	rootCmd.AddCommand(logsCmd)
}
