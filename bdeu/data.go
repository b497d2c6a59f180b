package bdeu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Data holds a table of categorical samples: one row per record, one
// column per variable, values are 0-based category codes. Arities are
// autodetected as one more than each column's maximum observed value.
type Data struct {
	n       int
	arities []int
	records [][]int
}

// ReadData parses whitespace-separated integer rows, one record per
// non-blank line. The first row fixes the variable count; every
// subsequent row must match it.
func ReadData(r io.Reader) (*Data, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var records [][]int
	n := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if n == -1 {
			n = len(fields)
		} else if len(fields) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrMalformed, len(records)+1, len(fields), n)
		}
		row := make([]int, n)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			row[i] = v
		}
		records = append(records, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrMalformed
	}

	arities := make([]int, n)
	for _, row := range records {
		for v, val := range row {
			if val+1 > arities[v] {
				arities[v] = val + 1
			}
		}
	}
	return &Data{n: n, arities: arities, records: records}, nil
}

// N returns the number of variables.
func (d *Data) N() int {
	return d.n
}

// NumSamples returns the number of records.
func (d *Data) NumSamples() int {
	return len(d.records)
}

// Arity returns variable v's number of categories: one more than the
// largest value observed in its column.
func (d *Data) Arity(v int) int {
	return d.arities[v]
}
