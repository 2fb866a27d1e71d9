// Package report runs the host environment audit and renders its result.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/envaudit/internal/datadog"
	"nathanbeddoewebdev/envaudit/internal/environment"
)

// Searcher is the slice of the inventory client the report needs.
type Searcher interface {
	Search(ctx context.Context, query string) (*datadog.SearchResults, error)
}

// Compile-time check that the Datadog client satisfies Searcher.
var _ Searcher = (*datadog.Client)(nil)

// Build searches for every host and classifies the results against catalog.
// It returns the number of hosts the search returned alongside the report.
func Build(ctx context.Context, inv Searcher, catalog []string) (int, *environment.Report, error) {
	results, err := inv.Search(ctx, "")
	if err != nil {
		return 0, nil, fmt.Errorf("failed to search hosts: %w", err)
	}
	return len(results.Hosts), environment.Aggregate(results.Hosts, catalog), nil
}

// Run builds the report and writes it to w. Nothing is written if the search
// fails.
func Run(ctx context.Context, inv Searcher, catalog []string, w io.Writer) error {
	total, r, err := Build(ctx, inv, catalog)
	if err != nil {
		return err
	}
	return Print(w, total, r)
}

// Print renders the host count, the classified count and a table of hosts
// per environment. The report is assembled in memory and written to out in
// one call, so a failing writer yields a single error.
func Print(out io.Writer, total int, r *environment.Report) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Hosts: %d\n", total)
	fmt.Fprintf(&buf, "Mapped hosts: %d\n", r.Total())

	if len(r.Buckets) > 0 {
		fmt.Fprintln(&buf)
		w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ENVIRONMENT\tCOUNT\tHOSTS")
		fmt.Fprintln(w, "-----------\t-----\t-----")
		for _, b := range r.Buckets {
			fmt.Fprintf(w, "%s\t%d\t%s\n", b.Environment, len(b.Hosts), strings.Join(b.Hosts, ", "))
		}
		w.Flush()
	}

	if len(r.Unmatched) > 0 {
		fmt.Fprintf(&buf, "\nUnmatched hosts: %d\n", len(r.Unmatched))
		for _, h := range r.Unmatched {
			fmt.Fprintf(&buf, "  %s\n", h)
		}
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
