// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const summaryBody = `{
	"header": {"type": "esummary", "version": "0.3"},
	"result": {
		"uids": ["111", "222"],
		"111": {
			"uid": "111",
			"title": "Checkpoint inhibitors in solid tumors",
			"pubdate": "2023 Mar 14",
			"authors": [{"name": "Smith J", "authtype": "Author"}]
		},
		"222": {
			"uid": "222",
			"title": "CAR-T persistence",
			"pubdate": "2021",
			"authors": []
		}
	}
}`

func TestFetchSummaries(t *testing.T) {
	var gotParams url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		io.WriteString(w, summaryBody)
	}))
	defer ts.Close()
	swapEndpoint(t, &esummaryBase, ts.URL)

	summaries, err := testClient(ts).FetchSummaries(context.Background(), []string{"111", "222"})
	if err != nil {
		t.Fatalf("FetchSummaries() error: %v", err)
	}

	if got := gotParams.Get("id"); got != "111,222" {
		t.Errorf("id = %q, want comma-joined identifiers", got)
	}
	if got := gotParams.Get("retmode"); got != "json" {
		t.Errorf("retmode = %q, want json", got)
	}

	rec, ok := summaries["111"]
	if !ok {
		t.Fatal("missing summary for 111")
	}
	if rec.Title != "Checkpoint inhibitors in solid tumors" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.PubDate != "2023 Mar 14" {
		t.Errorf("pubdate = %q", rec.PubDate)
	}
	if len(rec.Authors) != 1 || rec.Authors[0] != "Smith J" {
		t.Errorf("authors = %v", rec.Authors)
	}
	if summaries["222"].Title != "CAR-T persistence" {
		t.Errorf("title for 222 = %q", summaries["222"].Title)
	}
}

func TestFetchSummariesMissingEntry(t *testing.T) {
	// The server only knows one of the two requested identifiers; the
	// other must be absent from the mapping, not an error.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"result": {"uids": ["111"], "111": {"uid": "111", "title": "Only one", "pubdate": "2020"}}}`)
	}))
	defer ts.Close()
	swapEndpoint(t, &esummaryBase, ts.URL)

	summaries, err := testClient(ts).FetchSummaries(context.Background(), []string{"111", "999"})
	if err != nil {
		t.Fatalf("FetchSummaries() error: %v", err)
	}
	if _, ok := summaries["999"]; ok {
		t.Error("999 should be absent from the mapping")
	}
	if summaries["111"].Title != "Only one" {
		t.Errorf("title = %q", summaries["111"].Title)
	}
}

func TestFetchSummariesEmptyInput(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("server should not be called for an empty identifier list")
	}))
	defer ts.Close()
	swapEndpoint(t, &esummaryBase, ts.URL)

	summaries, err := testClient(ts).FetchSummaries(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchSummaries() error: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("summaries = %v, want empty", summaries)
	}
}

func TestFetchSummariesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()
	swapEndpoint(t, &esummaryBase, ts.URL)

	_, err := testClient(ts).FetchSummaries(context.Background(), []string{"111"})
	if err == nil || !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("expected HTTP 502 error, got: %v", err)
	}
}

func TestFetchSummariesMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer ts.Close()
	swapEndpoint(t, &esummaryBase, ts.URL)

	_, err := testClient(ts).FetchSummaries(context.Background(), []string{"111"})
	if err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("expected parse error, got: %v", err)
	}
}
