package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ErrEmptySheet is returned when a file has no header row.
var ErrEmptySheet = errors.New("sheet: no header row")

// Table is a header row plus data rows. Data rows may be ragged.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadFile loads a spreadsheet by extension: .xlsx/.xlsm use the first
// worksheet, .tsv is tab separated, anything else is read as CSV.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("sheet: open %s: %w", filepath.Base(path), err)
		}
		defer f.Close()
		return readWorkbook(f)
	case ".tsv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sheet: read %s: %w", filepath.Base(path), err)
		}
		return ReadDelimited(data, '\t')
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sheet: read %s: %w", filepath.Base(path), err)
		}
		return ReadDelimited(data, ',')
	}
}

// ReadWorkbook loads the first worksheet of an xlsx stream.
func ReadWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*Table, error) {
	name := f.GetSheetName(0)
	if name == "" {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows of %q: %w", name, err)
	}
	return newTable(rows)
}

// ReadDelimited parses CSV-like bytes. Input that is not valid UTF-8 is
// decoded as Latin-1.
func ReadDelimited(data []byte, comma rune) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(DecodeText(data)))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: parse delimited: %w", err)
	}
	return newTable(rows)
}

// DecodeText returns data as a string, falling back to Latin-1 when it is not
// valid UTF-8. A UTF-8 byte order mark is dropped.
func DecodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\ufffd")
	}
	return string(decoded)
}

func newTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
