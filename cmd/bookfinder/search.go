// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/internal/export"
	"github.com/pdiddy/bookfinder/internal/search"
	"github.com/pdiddy/bookfinder/internal/topics"
	"github.com/pdiddy/bookfinder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for books by title or topic",
	Long: `Search queries the platform's catalog for books matching a free-text
query, an author, and a set of topics. By default only data science and AI
topics are searched; use --topic to pick topics or --all-topics to search
everything. The publication date range (--after/--before) is applied
client-side after fetching.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	if listTopics, _ := cmd.Flags().GetBool("list-topics"); listTopics {
		printTopics(os.Stdout)
		return nil
	}

	if loadPath, _ := cmd.Flags().GetString("load"); loadPath != "" {
		return renderQueryFile(loadPath, os.Stdout)
	}

	opts, err := searchOptionsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	cfg := searchConfigFromViper()
	client := search.NewClient(cfg.HTTPConfig, cfg.BaseURL)

	books, err := client.Search(context.Background(), opts)
	if err != nil {
		return err
	}
	books = search.FilterByDate(books, opts.After, opts.Before)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, opts, books); err != nil {
			return err
		}
		fmt.Printf("Query saved to %s\n", savePath)
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		if err := export.CSV(outPath, books); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", outPath)
		return nil
	}

	search.FormatBooks(books, os.Stdout)
	return nil
}

// searchOptionsFromFlags assembles search options from the command
// line. Topic resolution happens here so an unknown --topic value fails
// before any network call.
func searchOptionsFromFlags(cmd *cobra.Command, args []string) (search.Options, error) {
	opts := search.Options{}
	if len(args) > 0 {
		opts.Query = args[0]
	}
	opts.Author, _ = cmd.Flags().GetString("author")
	opts.AllTopics, _ = cmd.Flags().GetBool("all-topics")
	opts.Page, _ = cmd.Flags().GetInt("page")

	opts.Limit, _ = cmd.Flags().GetInt("limit")
	if !cmd.Flags().Changed("limit") {
		opts.Limit = viper.GetInt("search.limit")
	}

	names, _ := cmd.Flags().GetStringArray("topic")
	for _, name := range names {
		t, err := topics.Resolve(name)
		if err != nil {
			return opts, err
		}
		opts.Topics = append(opts.Topics, t)
	}

	var err error
	if opts.After, err = dateFlag(cmd, "after"); err != nil {
		return opts, err
	}
	if opts.Before, err = dateFlag(cmd, "before"); err != nil {
		return opts, err
	}
	return opts, nil
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, s)
	}
	return t, nil
}

// searchConfigFromViper reads search settings from the config file and
// environment, falling back to the built-in defaults.
func searchConfigFromViper() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Limit:   viper.GetInt("search.limit"),
		BaseURL: viper.GetString("search.base_url"),
	}
}

// printTopics writes the topic registry to w. Topics in the default
// data-science/AI subset are marked with an asterisk.
func printTopics(w io.Writer) {
	defaults := make(map[string]bool)
	for _, t := range topics.Defaults() {
		defaults[t.Slug] = true
	}

	fmt.Fprintln(w, "\nAvailable topics (* = searched by default):")
	for _, t := range topics.All() {
		marker := " "
		if defaults[t.Slug] {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-24s %s\n", marker, t.Name, t.Slug)
	}
}

// renderQueryFile prints the results saved in a query file without
// contacting the platform.
func renderQueryFile(path string, w io.Writer) error {
	qf, err := search.ReadQueryFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved query from %s (%d results)\n", qf.Summary.Timestamp.Format("2006-01-02 15:04"), qf.Summary.Total)
	search.FormatBooks(qf.Results, w)
	return nil
}

func registerSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("author", "a", "", "filter by author name")
	cmd.Flags().String("after", "", "only books published on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("before", "", "only books published on or before this date (YYYY-MM-DD)")
	cmd.Flags().IntP("limit", "l", 10, "number of results to return")
	cmd.Flags().IntP("page", "p", 0, "page number for pagination")
	cmd.Flags().StringP("output", "o", "", "save results to a CSV file")
	cmd.Flags().StringArrayP("topic", "t", nil, "filter by topic (repeatable)")
	cmd.Flags().Bool("list-topics", false, "list available topics and exit")
	cmd.Flags().Bool("all-topics", false, "search all topics (disable the default data science filter)")
	cmd.Flags().String("save", "", "save the query and results to a YAML file")
	cmd.Flags().String("load", "", "render a previously saved query file (no network call)")
}

func init() {
	registerSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
