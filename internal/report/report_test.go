package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"nathanbeddoewebdev/envaudit/internal/datadog"
	"nathanbeddoewebdev/envaudit/internal/domain"
	"nathanbeddoewebdev/envaudit/internal/environment"

	"github.com/google/go-cmp/cmp"
)

// mockSearcher implements Searcher for report tests.
type mockSearcher struct {
	results   *datadog.SearchResults
	err       error
	calls     int
	lastQuery string
}

func (m *mockSearcher) Search(_ context.Context, query string) (*datadog.SearchResults, error) {
	m.calls++
	m.lastQuery = query
	return m.results, m.err
}

func TestBuild_SearchesWithEmptyQuery(t *testing.T) {
	mock := &mockSearcher{results: &datadog.SearchResults{Hosts: []string{"web-prod-1"}}}

	if _, _, err := Build(context.Background(), mock, environment.DefaultCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.calls != 1 {
		t.Errorf("expected 1 search call, got %d", mock.calls)
	}
	if mock.lastQuery != "" {
		t.Errorf("expected empty query, got %q", mock.lastQuery)
	}
}

func TestBuild_CountsAndBuckets(t *testing.T) {
	mock := &mockSearcher{results: &datadog.SearchResults{
		Hosts: []string{"web-prod-1", "db-staging-2", "misc-3"},
	}}

	total, r, err := Build(context.Background(), mock, []string{"prod", "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 hosts, got %d", total)
	}

	want := map[string][]string{"prod": {"web-prod-1"}, "staging": {"db-staging-2"}}
	if diff := cmp.Diff(want, r.Map()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PrintsReport(t *testing.T) {
	mock := &mockSearcher{results: &datadog.SearchResults{
		Hosts: []string{"web-prod-1", "db-staging-2", "misc-3", "api-prod-2"},
	}}

	var out bytes.Buffer
	if err := Run(context.Background(), mock, []string{"prod", "staging"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Hosts: 4\n",
		"Mapped hosts: 3\n",
		"ENVIRONMENT", "COUNT", "HOSTS",
		"web-prod-1, api-prod-2",
		"db-staging-2",
		"Unmatched hosts: 1\n",
		"  misc-3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}

	if strings.Index(got, "prod ") > strings.Index(got, "staging ") {
		t.Errorf("expected prod row before staging row:\n%s", got)
	}
}

func TestRun_NoMatches(t *testing.T) {
	mock := &mockSearcher{results: &datadog.SearchResults{Hosts: []string{"misc-1"}}}

	var out bytes.Buffer
	if err := Run(context.Background(), mock, []string{"prod"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Mapped hosts: 0\n") {
		t.Errorf("expected zero mapped hosts, got:\n%s", got)
	}
	if strings.Contains(got, "ENVIRONMENT") {
		t.Errorf("expected no table without matches, got:\n%s", got)
	}
}

func TestRun_SearchErrorWritesNothing(t *testing.T) {
	searchErr := fmt.Errorf("datadog: failed to decode search response: %w", domain.ErrDecode)
	mock := &mockSearcher{err: searchErr}

	var out bytes.Buffer
	err := Run(context.Background(), mock, environment.DefaultCatalog(), &out)
	if !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", out.String())
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrint_WriterErrorIsReturned(t *testing.T) {
	r := environment.Aggregate([]string{"web-prod-1", "misc-3"}, []string{"prod"})

	err := Print(failingWriter{}, 2, r)
	if err == nil {
		t.Fatal("expected error from failing writer, got nil")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected underlying cause in error, got %q", err.Error())
	}
}

func TestPrint_HeaderOnlyWhenNothingMatched(t *testing.T) {
	var out bytes.Buffer
	if err := Print(&out, 0, environment.Aggregate(nil, []string{"prod"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Hosts: 0\nMapped hosts: 0\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
