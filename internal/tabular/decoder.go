// Package tabular decodes uploaded container formats into a generic
// row-major cell grid. It knows nothing about telemetry; interpreting the
// cells is the analysis pipeline's job.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnreadable marks inputs the decoder could not parse at all. The
// underlying cause is wrapped alongside it.
var ErrUnreadable = errors.New("unreadable table")

// AllowedExtension reports whether the filename carries a supported upload
// extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// DecodeFile opens and decodes a file on disk, choosing the decoder by
// extension.
func DecodeFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()
	return Decode(filepath.Base(path), f)
}

// Decode reads the stream into a raw cell grid. The filename only selects
// the decoder; content errors surface wrapped in ErrUnreadable.
func Decode(filename string, r io.Reader) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return decodeXLSX(r)
	case ".csv":
		return decodeCSV(r)
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls is not supported, re-export as .xlsx", ErrUnreadable)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrUnreadable, ext)
	}
}

func decodeXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}

func decodeCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // header block rows vary in width
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}
