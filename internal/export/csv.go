// Package export flattens the trade collection into a delimited text
// table.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"smc-journal/internal/models"
)

// markupTags matches embedded markup in the notes payload. Notes are
// otherwise opaque; stripping happens only at the export boundary.
var markupTags = regexp.MustCompile(`<[^>]*>?`)

// Row is one exported trade. Field order fixes the column order.
type Row struct {
	Date    string  `csv:"Date"`
	Coin    string  `csv:"Coin"`
	Session string  `csv:"Session"`
	Type    string  `csv:"Type"`
	Result  string  `csv:"Result"`
	RR      float64 `csv:"RR"`
	PnL     float64 `csv:"PnL%"`
	Lesson  string  `csv:"Lesson"`
	Notes   string  `csv:"Notes"`
}

// Rows flattens trades into export rows, stripping markup from notes
// and replacing literal commas with semicolons to keep the delimiter
// unambiguous.
func Rows(trades []models.Trade) []*Row {
	rows := make([]*Row, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, &Row{
			Date:    t.Date,
			Coin:    t.Coin,
			Session: t.Session,
			Type:    string(t.Type),
			Result:  string(t.Result),
			RR:      t.RR,
			PnL:     t.PnLPercent,
			Lesson:  t.LessonSnippet,
			Notes:   sanitizeNotes(t.Notes),
		})
	}
	return rows
}

// Write renders the trades as CSV, one row per trade plus a header.
func Write(w io.Writer, trades []models.Trade) error {
	return gocsv.Marshal(Rows(trades), w)
}

// sanitizeNotes strips markup tags and neutralizes commas.
func sanitizeNotes(notes string) string {
	plain := markupTags.ReplaceAllString(notes, "")
	return strings.ReplaceAll(plain, ",", ";")
}

// DefaultFileName returns the conventional export file name for the
// given day.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("smc_log_%s.csv", now.Format(models.DateLayout))
}
