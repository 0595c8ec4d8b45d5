package gsheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type appendRequest struct {
	path   string
	query  string
	values [][]interface{}
}

// newFakeSheets returns a sheets client talking to a stub backend that
// records every append request.
func newFakeSheets(t *testing.T) (*sheets.Service, *[]appendRequest) {
	t.Helper()

	var requests []appendRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body sheets.ValueRange
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		requests = append(requests, appendRequest{
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			values: body.Values,
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(ts.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(ts.URL),
		option.WithHTTPClient(ts.Client()),
	)
	if err != nil {
		t.Fatalf("sheets.NewService: %v", err)
	}
	return svc, &requests
}

func TestAppend(t *testing.T) {
	svc, requests := newFakeSheets(t)
	a := New(svc, "sheet-1", "A1")

	row := []string{"jana@example.cz", "Jana", "Nováková"}
	if err := a.Append(context.Background(), row); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if len(*requests) != 1 {
		t.Fatalf("backend saw %d requests, want 1", len(*requests))
	}
	req := (*requests)[0]

	if !strings.Contains(req.path, "sheet-1") || !strings.Contains(req.path, "A1:append") {
		t.Errorf("path = %q, want append against sheet-1 range A1", req.path)
	}
	if !strings.Contains(req.query, "valueInputOption=USER_ENTERED") {
		t.Errorf("query = %q, want USER_ENTERED interpretation", req.query)
	}

	if len(req.values) != 1 || len(req.values[0]) != len(row) {
		t.Fatalf("appended values = %v, want one row of %d cells", req.values, len(row))
	}
	for i, cell := range req.values[0] {
		if cell != row[i] {
			t.Errorf("cell %d = %v, want %q", i, cell, row[i])
		}
	}
}

func TestAppend_DuplicatesAreNotDeduplicated(t *testing.T) {
	svc, requests := newFakeSheets(t)
	a := New(svc, "sheet-1", "")

	row := []string{"jana@example.cz", "Jana", "Nováková"}
	for i := 0; i < 2; i++ {
		if err := a.Append(context.Background(), row); err != nil {
			t.Fatalf("Append() #%d error = %v", i+1, err)
		}
	}

	// No idempotency key: the identical row lands twice.
	if len(*requests) != 2 {
		t.Fatalf("backend saw %d appends, want 2", len(*requests))
	}
}
