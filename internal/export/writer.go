// Package export renders extraction results as CSV, one row per person.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/dgallion1/profilex/internal/profile"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// TitleDelimiter joins a person's titles into a single CSV cell.
const TitleDelimiter = "; "

var columns = []string{"Name", "Location", "Titles"}

// Writer wraps csv.Writer for exporting person records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WritePeople writes one row per record.
func (w *Writer) WritePeople(people []profile.Record) error {
	for i := range people {
		if err := w.csv.Write(recordToRow(&people[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func recordToRow(rec *profile.Record) []string {
	return []string{
		rec.Name,
		rec.Location,
		strings.Join(rec.Titles, TitleDelimiter),
	}
}

// WriteResult writes a complete CSV document (BOM, header, rows) for an
// extraction result.
func WriteResult(w io.Writer, res profile.Result) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WritePeople(res.People); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
