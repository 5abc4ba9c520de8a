package csvtable

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// Ensure Table implements the interface.
var _ driven.TableSource = (*Table)(nil)

// utf8BOM is written by spreadsheet programs in front of the header.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a CSV file used as a TableSource.
//
// The records of the last read are kept so that a write-back only replaces
// the named cells. Original header spelling, unnamed or duplicate columns
// and blank lines survive a read/write cycle.
type Table struct {
	path  string
	comma rune
	bom   bool

	rawHeader []string
	records   []rawRecord
}

// rawRecord is a data record as found in the file. row is the index into
// domain.Table.Rows, or -1 for a blank record.
type rawRecord struct {
	fields      []string
	row         int
	blankBefore int
}

// New creates a table for the CSV file at path. The file is not opened
// until ReadTable is called.
func New(path string) *Table {
	return &Table{path: path, comma: ','}
}

// Location returns the file path.
func (t *Table) Location() string {
	return t.path
}

// ReadTable reads the header and all data rows. Fully empty rows are
// skipped, as are columns without a name and repeated column names.
func (t *Table) ReadTable(ctx context.Context) (*domain.Table, error) {
	raw, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}
	t.rawHeader, t.records = nil, nil
	if bytes.HasPrefix(raw, utf8BOM) {
		t.bom = true
		raw = raw[len(utf8BOM):]
	}
	t.comma = detectSeparator(raw)

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = t.comma
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header", domain.ErrInvalidInput, t.path)
		}
		return nil, fmt.Errorf("parse %s: %w", t.path, err)
	}
	headerLine, _ := r.FieldPos(0)
	lastLine := headerLine + newlines(header)

	columns := make([]string, len(header))
	table := &domain.Table{}
	var records []rawRecord
	seen := make(map[string]bool)
	for i := range header {
		name := normalizeHeader(header[i])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		columns[i] = name
		table.Header = append(table.Header, name)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", t.path, err)
		}
		line, _ := r.FieldPos(0)
		rec := rawRecord{fields: record, row: -1, blankBefore: max(line-lastLine-1, 0)}
		lastLine = line + newlines(record)

		if !isBlank(record) {
			row := make(domain.Row, len(table.Header))
			for i, column := range columns {
				if column == "" {
					continue
				}
				if i < len(record) {
					row[column] = record[i]
				} else {
					row[column] = ""
				}
			}
			rec.row = len(table.Rows)
			table.Rows = append(table.Rows, row)
		}
		records = append(records, rec)
	}
	t.rawHeader, t.records = header, records
	return table, nil
}

// WriteTable replaces the file content. The file is written to a temporary
// sibling and renamed so a failed write leaves the original intact.
func (t *Table) WriteTable(ctx context.Context, table *domain.Table) error {
	if table == nil {
		return fmt.Errorf("%w: nil table", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(t.path), ".csvtable-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	defer os.Remove(tmp.Name())

	buf := bufio.NewWriter(tmp)
	if t.bom {
		_, _ = buf.Write(utf8BOM)
	}
	w := csv.NewWriter(buf)
	w.Comma = t.comma

	if err := t.writeRecords(w, buf, table); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := buf.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}

	if info, err := os.Stat(t.path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	return nil
}

// writeRecords writes the header and rows. When table has the rows of the
// last read, the original records are written with the named cells
// replaced; otherwise the table is written as is.
func (t *Table) writeRecords(w *csv.Writer, buf *bufio.Writer, table *domain.Table) error {
	if t.rawHeader == nil || len(table.Rows) != t.readRows() {
		if err := w.Write(table.Header); err != nil {
			return err
		}
		record := make([]string, len(table.Header))
		for _, row := range table.Rows {
			for i, column := range table.Header {
				record[i] = row[column]
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	header := append([]string(nil), t.rawHeader...)
	position := make(map[string]int, len(table.Header))
	for i := range header {
		name := normalizeHeader(header[i])
		if _, ok := position[name]; !ok && name != "" {
			position[name] = i
		}
	}
	for _, column := range table.Header {
		if _, ok := position[column]; !ok {
			position[column] = len(header)
			header = append(header, column)
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, raw := range t.records {
		if raw.blankBefore > 0 {
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			if _, err := buf.WriteString(strings.Repeat("\n", raw.blankBefore)); err != nil {
				return err
			}
		}
		record := append([]string(nil), raw.fields...)
		if raw.row >= 0 {
			for len(header) > len(t.rawHeader) && len(record) < len(header) {
				record = append(record, "")
			}
			row := table.Rows[raw.row]
			for _, column := range table.Header {
				value, ok := row[column]
				if !ok {
					continue
				}
				i := position[column]
				for len(record) <= i {
					record = append(record, "")
				}
				record[i] = value
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) readRows() int {
	n := 0
	for _, raw := range t.records {
		if raw.row >= 0 {
			n++
		}
	}
	return n
}

// detectSeparator picks ';' when the first line has more semicolons than commas.
func detectSeparator(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func newlines(record []string) int {
	n := 0
	for _, field := range record {
		n += strings.Count(field, "\n")
	}
	return n
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
