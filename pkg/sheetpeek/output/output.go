// Package output renders inspection results for a terminal or a pipe.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatText prints the pipe-delimited line format.
	FormatText Format = "text"
	// FormatTable prints a boxed table.
	FormatTable Format = "table"
	// FormatJSON prints the models as JSON.
	FormatJSON Format = "json"
	// FormatTOON prints the models as TOON.
	FormatTOON Format = "toon"
)

// ErrUnknownFormat indicates an output format that is not recognised.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatTOON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s (must be text, table, json, or toon)", ErrUnknownFormat, s)
	}
}

// Delimiter separates values on a text line.
const Delimiter = "|"

// Text format section titles.
const (
	HeadersTitle = "HEADERS_DETECTED:"
	PreviewTitle = "ROWS_PREVIEW:"
	SheetsTitle  = "SHEETS:"
)

// WindowTitle returns the text title for a row window, e.g. "ROWS 6-15:".
// A window with no last row is left open, e.g. "ROWS 21-:".
func WindowTitle(w *models.Window) string {
	first, last := w.FirstRow(), w.LastRow()
	if last < first {
		return fmt.Sprintf("ROWS %d-:", first)
	}
	return fmt.Sprintf("ROWS %d-%d:", first, last)
}

// ErrorLine formats a failure the way every command reports it.
func ErrorLine(err error) string {
	return "ERROR: " + err.Error()
}

// NotFoundLine formats the missing input file message.
func NotFoundLine(path string) string {
	return "File not found: " + path
}

// Renderer writes results to w in one format.
type Renderer struct {
	w      io.Writer
	format Format
	pretty bool
}

// NewRenderer creates a Renderer. pretty indents JSON output.
func NewRenderer(w io.Writer, format Format, pretty bool) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{w: w, format: format, pretty: pretty}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Headers renders detected column names.
func (r *Renderer) Headers(h *models.HeaderSet) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(h)
	case FormatTOON:
		return r.writeTOON(h)
	case FormatTable:
		return renderHeadersTable(r.w, h)
	default:
		return r.lines(HeadersTitle, strings.Join(h.Names, Delimiter))
	}
}

// Window renders a row window under title. title only applies to text
// output; structured formats carry offset and count instead.
func (r *Renderer) Window(w *models.Window, title string) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(w)
	case FormatTOON:
		return r.writeTOON(w)
	case FormatTable:
		return renderWindowTable(r.w, w)
	default:
		lines := make([]string, 0, len(w.Rows)+1)
		lines = append(lines, title)
		for _, row := range w.Rows {
			lines = append(lines, RowLine(row))
		}
		return r.lines(lines...)
	}
}

// Workbook renders the sheet list.
func (r *Renderer) Workbook(info *models.WorkbookInfo) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(info)
	case FormatTOON:
		return r.writeTOON(info)
	case FormatTable:
		return renderSheetsTable(r.w, info)
	default:
		lines := make([]string, 0, len(info.Sheets)+1)
		lines = append(lines, SheetsTitle)
		for _, s := range info.Sheets {
			lines = append(lines, SheetLine(s))
		}
		return r.lines(lines...)
	}
}

// RowLine formats a row as "ROW_<n>: v1|v2|...".
func RowLine(row models.Row) string {
	return fmt.Sprintf("ROW_%d: %s", row.Number, strings.Join(row.Values, Delimiter))
}

// SheetLine formats a sheet as "SHEET_<n>: name|state|visibility|dimension".
func SheetLine(s models.SheetInfo) string {
	state := ""
	if s.Active {
		state = "active"
	}
	visibility := "visible"
	if !s.Visible {
		visibility = "hidden"
	}
	return fmt.Sprintf("SHEET_%d: %s", s.Index+1, strings.Join([]string{s.Name, state, visibility, s.Dimension}, Delimiter))
}

func (r *Renderer) lines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}
