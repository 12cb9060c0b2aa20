// Package scores loads the IAS protein-interaction score table: a
// tab-separated file keyed by an ordered protein pair, fetched from a URL or
// read from a local path.
package scores

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	// ProteinOne and ProteinTwo are the identifier columns of the table.
	ProteinOne = "Protein 1"
	ProteinTwo = "Protein 2"
)

// FloatColumns are coerced to float64 during parsing; every other column is
// kept as its raw string.
var FloatColumns = []string{
	"Integrated score",
	"evidence: Co-dependence",
	"evidence: Physical",
	"evidence: Protein co-expression",
	"evidence: Sequence similarity",
	"evidence: mRNA co-expression",
}

// Row holds one table row keyed by column name.
type Row map[string]any

// Table indexes rows by first protein then second protein. The index is
// ordered: (A,B) being present says nothing about (B,A). A duplicate (A,B)
// pair overwrites the earlier row.
type Table map[string]map[string]Row

// Pair returns the row for the ordered pair (a, b), if present.
func (t Table) Pair(a, b string) (Row, bool) {
	inner, ok := t[a]
	if !ok {
		return nil, false
	}
	r, ok := inner[b]
	return r, ok
}

// Parse reads the tab-separated score table. The first record is the header;
// it must contain both protein-identifier columns and every float column.
func Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read score table header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range append([]string{ProteinOne, ProteinTwo}, FloatColumns...) {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("score table missing column %q", required)
		}
	}
	isFloat := map[string]bool{}
	for _, name := range FloatColumns {
		isFloat[name] = true
	}

	table := Table{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read score table row %d: %w", line+1, err)
		}
		line++
		if len(record) < len(header) {
			return nil, fmt.Errorf("score table row %d has %d fields, want %d", line, len(record), len(header))
		}
		row := Row{}
		for name, i := range col {
			if isFloat[name] {
				f, err := strconv.ParseFloat(record[i], 64)
				if err != nil {
					return nil, fmt.Errorf("score table row %d column %q: %w", line, name, err)
				}
				row[name] = f
				continue
			}
			row[name] = record[i]
		}
		p1 := record[col[ProteinOne]]
		p2 := record[col[ProteinTwo]]
		if table[p1] == nil {
			table[p1] = map[string]Row{}
		}
		table[p1][p2] = row
	}
	return table, nil
}

// ParseFile parses the score table at path.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
