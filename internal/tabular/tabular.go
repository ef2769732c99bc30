// Package tabular renders extracted records as delimited tabular output.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bjaus/fmter"
	"github.com/dgallion1/dxform/internal/transform"
)

// Formats lists the output formats this tool supports.
var Formats = []fmter.Format{fmter.CSV, fmter.TSV, fmter.Table, fmter.Markdown}

// ParseFormat parses an output format name, restricted to the formats
// that render row-shaped data.
func ParseFormat(name string) (fmter.Format, error) {
	f, err := fmter.ParseFormat(name)
	if err != nil {
		return "", err
	}
	for _, allowed := range Formats {
		if f == allowed {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", fmter.ErrUnsupportedFormat, name)
}

// Row is one output row. It carries its own header so the format
// writers can emit a header line from the first row.
type Row struct {
	header []string
	cells  []string
	delim  rune
}

func (r Row) Row() []string    { return r.cells }
func (r Row) Header() []string { return r.header }
func (r Row) Delimiter() rune  { return r.delim }

// Rows orders records into output rows. Field values appear in the
// order given by names; missing names render as empty cells.
func Rows(names []string, records []transform.Record, delim rune) []Row {
	if delim == 0 {
		delim = ','
	}
	rows := make([]Row, len(records))
	for i, rec := range records {
		cells := make([]string, len(names))
		for j, name := range names {
			cells[j] = rec[name]
		}
		rows[i] = Row{header: names, cells: cells, delim: delim}
	}
	return rows
}

// Write renders records to w in the requested format. The header row is
// always emitted, even for zero records in the delimited formats.
func Write(w io.Writer, f fmter.Format, names []string, records []transform.Record, delim rune) error {
	rows := Rows(names, records, delim)
	if len(rows) == 0 {
		return writeHeaderOnly(w, f, names, delim)
	}
	return fmter.Write(w, f, rows...)
}

// writeHeaderOnly covers the empty-sequence case: fmter has no items to
// derive a header from, so the delimited formats write theirs directly.
func writeHeaderOnly(w io.Writer, f fmter.Format, names []string, delim rune) error {
	switch f {
	case fmter.CSV:
		if delim == 0 {
			delim = ','
		}
		cw := csv.NewWriter(w)
		cw.Comma = delim
		if err := cw.Write(names); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case fmter.TSV:
		cw := csv.NewWriter(w)
		cw.Comma = '\t'
		if err := cw.Write(names); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}
	// Table and markdown render nothing without rows.
	return nil
}
