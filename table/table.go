// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table renders API results as aligned text or CSV.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/stockparfait/errors"
)

// Row is implemented by the result types that can be printed.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Table of rows with an optional header. When present, the header is expected
// to have as many columns as each row.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable creates a new Table with optional column headers.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params for writing a Table.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to omit the header
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// lines returns the header, if printed, followed by at most p.Rows rows.
func (t *Table) lines(p Params) (header []string, rows [][]string) {
	if !p.NoHeader && len(t.Header) > 0 {
		header = t.Header
	}
	n := len(t.Rows)
	if p.Rows > 0 && p.Rows < n {
		n = p.Rows
	}
	rows = make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = t.Rows[i].CSV()
	}
	return
}

// WriteCSV writes the table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	header, rows := t.lines(p)
	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Annotate(err, "failed to write rows")
	}
	return nil
}

// WriteText writes the table as right-aligned columns separated by " | ".
// Values wider than p.MaxColWidth are truncated and end with "..".
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	header, rows := t.lines(p)
	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}
	if len(all) == 0 {
		return nil
	}
	widths := make([]int, len(all[0]))
	for i, row := range all {
		if len(row) == 0 {
			return errors.Reason("row %d is empty", i)
		}
		if len(row) != len(widths) {
			return errors.Reason("row %d has %d columns, expected %d",
				i, len(row), len(widths))
		}
		for j, s := range row {
			if n := utf8.RuneCountInString(s); n > widths[j] {
				widths[j] = n
			}
		}
	}
	if p.MaxColWidth > 0 {
		for j := range widths {
			if widths[j] > p.MaxColWidth {
				widths[j] = p.MaxColWidth
			}
		}
	}

	write := func(row []string) error {
		cells := make([]string, len(row))
		for j, s := range row {
			if r := []rune(s); len(r) > widths[j] {
				s = string(r[:widths[j]-2]) + ".."
			}
			cells[j] = fmt.Sprintf("%*s", widths[j], s)
		}
		_, err := fmt.Fprintln(w, strings.Join(cells, " | "))
		return err
	}

	if header != nil {
		if err := write(header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		rule := make([]string, len(widths))
		for j, n := range widths {
			rule[j] = strings.Repeat("-", n)
		}
		if err := write(rule); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
	}
	for _, row := range rows {
		if err := write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
