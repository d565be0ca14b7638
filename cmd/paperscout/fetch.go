// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscout/internal/archive"
	"github.com/pdiddy/paperscout/internal/eutils"
	"github.com/pdiddy/paperscout/internal/report"
	"github.com/pdiddy/paperscout/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 10
	defaultUserAgent  = "paperscout/0.1"
	toolName          = "paperscout"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Fetch matching papers and report industry-affiliated authors",
	Long: `Fetch searches PubMed for the query, retrieves per-article summaries and
full XML records, and reports one row per paper: PubMed ID, title,
publication date, non-academic authors (corporate keyword match on the
affiliation text), their affiliations, and the first contact email.

Without --file the rows are dumped to stdout as JSON; with --file they
are written as CSV with a fixed header.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "write the report to a CSV file instead of stdout")
	fetchCmd.Flags().BoolP("debug", "d", false, "print the resolved query before execution")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of search results (default 10)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("api-key", "", "NCBI API key (default: .secrets/ncbi-api-key)")
	fetchCmd.Flags().String("save", "", "also save the run to a YAML report file")
	fetchCmd.Flags().Bool("archive", false, "record the run in the local archive")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	term := args[0]

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		fmt.Fprintf(cmd.OutOrStdout(), "Fetching papers for query: %s\n", term)
	}

	cfg := fetchConfig(cmd)
	apiKey, _ := cmd.Flags().GetString("api-key")

	client := &eutils.Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		APIKey: secretDefault("ncbi-api-key", apiKey),
		Tool:   toolName,
		Email:  secretDefault("eutils-email", ""),
		Config: cfg,
	}

	ctx := cmd.Context()
	rows, err := runPipeline(ctx, client, term, cfg.MaxResults)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := report.WriteReportFile(savePath, term, cfg.MaxResults, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Run saved to %s\n", savePath)
	}

	if doArchive, _ := cmd.Flags().GetBool("archive"); doArchive {
		runID, err := archiveRun(ctx, term, rows)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Run archived as #%d\n", runID)
	}

	filePath, _ := cmd.Flags().GetString("file")
	if filePath == "" {
		return report.FormatJSON(rows, cmd.OutOrStdout())
	}
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No papers found to save.")
		return nil
	}
	if err := report.WriteCSV(rows, filePath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", filePath)
	return nil
}

// runPipeline executes the four fetch stages in order: search, batched
// summaries, per-identifier detail fetch, report assembly. Detail fetches
// run strictly sequentially; any failure aborts the run.
func runPipeline(ctx context.Context, client *eutils.Client, term string, maxResults int) ([]types.ReportRow, error) {
	ids, err := client.Search(ctx, term, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []types.ReportRow{}, nil
	}

	summaries, err := client.FetchSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make(map[string]types.Detail, len(ids))
	for _, id := range ids {
		det, err := client.FetchDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		details[id] = det
	}

	return report.Assemble(ids, summaries, details), nil
}

func archiveRun(ctx context.Context, term string, rows []types.ReportRow) (int64, error) {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.RecordRun(ctx, term, rows)
}

// fetchConfig builds the fetch configuration from flags, config file
// values, and package defaults, in that order of precedence.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("fetch.max_results")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	keywords := viper.GetStringSlice("fetch.company_keywords")
	if len(keywords) == 0 {
		keywords = types.DefaultCompanyKeywords()
	}
	domains := viper.GetStringSlice("fetch.company_email_domains")
	if len(domains) == 0 {
		domains = types.DefaultCompanyEmailDomains()
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults:          maxResults,
		CompanyKeywords:     keywords,
		CompanyEmailDomains: domains,
	}
}

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{
		Path: viper.GetString("archive.path"),
	}
}
