// Package dataset reads the tab-separated source files shared by the
// costar tools: the (actor, movie, year) relation and the per-tool
// query files. Parsing is all-or-nothing — the first malformed row
// fails the whole read so callers never observe a partially parsed
// input.
package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Record is one row of the source relation: an actor appearing in a
// movie released in a given year.
type Record struct {
	Actor string
	Title string
	Year  int
}

const (
	recordFields = 3
	pairFields   = 2

	// Actor and title fields can be long; give the scanner headroom
	// beyond the bufio default.
	maxLineBytes = 1 << 20
)

// ReadRecords parses the dataset relation. The first line is a header
// and is discarded. Every remaining row must have exactly three
// tab-separated fields and an integer year.
func ReadRecords(r io.Reader) ([]Record, error) {
	sc := newScanner(r)

	if !sc.Scan() {
		// Empty input: no header, no records.
		return nil, sc.Err()
	}

	var records []Record
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != recordFields {
			return nil, &DataError{Op: "read record", Line: line, Cause: ErrFieldCount}
		}
		year, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, &DataError{Op: "read record", Line: line, Cause: ErrYearNotInteger}
		}
		records = append(records, Record{Actor: fields[0], Title: fields[1], Year: year})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadPairs parses a shortest-path query file: tab-separated
// (start, end) actor pairs with a discarded header. A row without
// exactly two fields aborts the read; malformed queries fail the run
// rather than being skipped.
func ReadPairs(r io.Reader) ([][2]string, error) {
	sc := newScanner(r)

	if !sc.Scan() {
		return nil, sc.Err()
	}

	var pairs [][2]string
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != pairFields {
			return nil, &DataError{Op: "read pair", Line: line, Cause: ErrFieldCount}
		}
		pairs = append(pairs, [2]string{fields[0], fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ReadTargets parses a prediction query file: one actor name per line
// with a discarded header. Blank lines are skipped; whether a name
// exists in the dataset is checked at the algorithm boundary, not here.
func ReadTargets(r io.Reader) ([]string, error) {
	sc := newScanner(r)

	if !sc.Scan() {
		return nil, sc.Err()
	}

	var targets []string
	for sc.Scan() {
		if name := sc.Text(); name != "" {
			targets = append(targets, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}
