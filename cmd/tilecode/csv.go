package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// newCSVReader returns a CSV reader which skips comment lines starting
// with '#' and trims leading space from fields
func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	return reader
}

// readFloats reads every record of a CSV stream as a row of floats
func readFloats(r io.Reader) ([][]float64, error) {
	records, err := newCSVReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readFloats: %w", err)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i], err = parseFloats(record)
		if err != nil {
			return nil, fmt.Errorf("readFloats: record %d: %w", i+1, err)
		}
	}
	return rows, nil
}

// readInts reads every record of a CSV stream as a row of ints
func readInts(r io.Reader) ([][]int, error) {
	records, err := newCSVReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readInts: %w", err)
	}

	rows := make([][]int, len(records))
	for i, record := range records {
		rows[i] = make([]int, len(record))
		for j, field := range record {
			rows[i][j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("readInts: record %d: %w", i+1, err)
			}
		}
	}
	return rows, nil
}

// parseFloats parses each field as a float64
func parseFloats(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// writeInts writes rows of ints as CSV records
func writeInts(w *csv.Writer, rows [][]int) error {
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.Itoa(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeFloats writes rows of floats as CSV records using the shortest
// representation that round trips
func writeFloats(w *csv.Writer, rows [][]float64) error {
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
