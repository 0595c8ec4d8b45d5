// Package gsheets appends formatted registration rows to the shared
// Google Sheet.
package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Appender appends rows to one spreadsheet range. It implements
// core.RowAppender and is safe for concurrent use; concurrent appends
// land in whatever order the service receives them.
type Appender struct {
	service       *sheets.Service
	spreadsheetID string
	sheetRange    string
}

// New returns an Appender for the given spreadsheet. sheetRange names
// the table to extend, "A1" when empty.
func New(service *sheets.Service, spreadsheetID, sheetRange string) *Appender {
	if sheetRange == "" {
		sheetRange = "A1"
	}
	return &Appender{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}
}

// Append adds row as the new last record. USER_ENTERED interpretation
// means the service re-parses each cell as if typed by a user, so
// numeric-looking strings may become numbers or dates; that quirk is
// accepted. Appends carry no idempotency key: the same row appended
// twice is stored twice.
func (a *Appender) Append(ctx context.Context, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	body := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := a.service.Spreadsheets.Values.
		Append(a.spreadsheetID, a.sheetRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to sheet: %w", err)
	}
	return nil
}
