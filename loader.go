package exposure

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Required column names, matched literally.
const (
	ColumnClient   = "Full Name"
	ColumnStock    = "Name"
	ColumnProduct  = "Product"
	ColumnMaturity = "Maturity Date"
	ColumnAmount   = "Exposure Amount"
)

// Columns lists the required columns in their canonical order.
var Columns = []string{ColumnClient, ColumnStock, ColumnProduct, ColumnMaturity, ColumnAmount}

// ErrMissingColumn is matched by every MissingColumnError.
var ErrMissingColumn = errors.New("missing column")

// MissingColumnError reports a required column absent from the header row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

// Load reads the exposure records from a spreadsheet file.
//
// The format is chosen on the extension: ".xlsx" reads the first sheet (or the
// one set by WithSheet), anything else is read as CSV. A missing file or a
// missing required column is an error; rows whose maturity date cannot be
// parsed are dropped.
func Load(path string, opts ...Option) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open exposure file %q: %w", path, err)
	}
	defer f.Close()

	var records []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = DecodeXLSX(f, opts...)
	default:
		records, err = DecodeCSV(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode exposure file %q: %w", path, err)
	}
	return records, nil
}

// DecodeCSV reads exposure records from a UTF-8 CSV stream with a header row.
func DecodeCSV(r io.Reader, opts ...Option) ([]Record, error) {
	o := newOptions(opts)
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows are padded with empty cells
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return decodeRows(rows, date.Parse, o.log)
}

// DecodeXLSX reads exposure records from an Excel workbook.
//
// Raw cell values are read so that dates stored as Excel serial numbers do not
// depend on the cell number format.
func DecodeXLSX(r io.Reader, opts ...Option) ([]Record, error) {
	o := newOptions(opts)
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheet := o.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheet")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	return decodeRows(rows, parseExcelDate, o.log)
}

// parseExcelDate parses a serial day number, or falls back to a text date.
func parseExcelDate(s string) (date.Date, error) {
	if serial, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return date.Date{}, fmt.Errorf("invalid Excel date %q: %w", s, err)
		}
		return date.Of(t), nil
	}
	return date.Parse(s)
}

// decodeRows maps a header row and data rows to records.
func decodeRows(rows [][]string, parseDate func(string) (date.Date, error), log *zap.Logger) ([]Record, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: Columns[0]}
	}
	index := make(map[string]int)
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	cols := make([]int, len(Columns))
	for i, name := range Columns {
		j, ok := index[name]
		if !ok {
			return nil, &MissingColumnError{Column: name}
		}
		cols[i] = j
	}

	cell := func(row []string, i int) string {
		if cols[i] < len(row) {
			return strings.TrimSpace(row[cols[i]])
		}
		return ""
	}

	records := make([]Record, 0, len(rows)-1)
	dropped := 0
	for n, row := range rows[1:] {
		maturity, err := parseDate(cell(row, 3))
		if err != nil {
			dropped++
			log.Debug("dropping row with invalid maturity date", zap.Int("row", n+2), zap.Error(err))
			continue
		}
		records = append(records, Record{
			Client:   cell(row, 0),
			Stock:    cell(row, 1),
			Product:  cell(row, 2),
			Maturity: maturity,
			Amount:   parseAmount(cell(row, 4)),
		})
	}
	log.Info("exposure records loaded", zap.Int("records", len(records)), zap.Int("dropped", dropped))
	return records, nil
}

var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "", "\u00a0", "")

// parseAmount reads a decimal amount. Empty or unparseable amounts are 0.
func parseAmount(s string) decimal.Decimal {
	s = amountCleaner.Replace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
