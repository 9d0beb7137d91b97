package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/usecase/resource"
	"ventas-admin/internal/utils/text"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (must be table, json or yaml)", format)
}

// writeListing prints l. JSON and YAML carry the typed items (and, for a
// page, its metadata); the table carries the rendered rows.
func writeListing(w io.Writer, format string, l resource.Listing) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l.Items)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l.Items); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, l)
	}
}

// maxCellWidth caps a table cell; JSON and YAML output is never shortened.
const maxCellWidth = 40

func writeTable(w io.Writer, l resource.Listing) error {
	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, strings.Join(l.Headers, "\t"))
	underline := make([]string, len(l.Headers))
	for i, h := range l.Headers {
		underline[i] = strings.Repeat("-", text.CountRunes(h))
	}
	fmt.Fprintln(tw, strings.Join(underline, "\t"))
	for _, row := range l.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = text.Truncate(cell, maxCellWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if l.Meta != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pageFooter(*l.Meta))
	}
	return nil
}

// pageFooter renders "page 2 / 5 (47 total)"; an unknown page count shows
// as "?" and an unknown total is left out.
func pageFooter(m pagination.Metadata) string {
	if !m.Known {
		return fmt.Sprintf("page %d / ?", m.Page)
	}
	footer := "page " + strconv.Itoa(m.Page) + " / " + strconv.Itoa(m.TotalPages)
	if m.Total > 0 {
		footer += fmt.Sprintf(" (%d total)", m.Total)
	}
	return footer
}
