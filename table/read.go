package table

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// ReadCSV reads a table from CSV input. The first record holds the labels.
// A column whose every cell parses as a number becomes a column of float64s,
// a column whose every cell parses as a date becomes a column of time.Times,
// and any other column is a column of strings.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}
	if len(records) == 0 {
		return nil, errors.New("reading CSV: missing the header")
	}

	labels := records[0]
	records = records[1:]
	t := New()
	for j, label := range labels {
		cells := make([]string, len(records))
		for i, record := range records {
			cells[i] = record[j]
		}
		t, err = t.WithColumn(label, parseCells(cells))
		if err != nil {
			return nil, errors.Wrap(err, "reading CSV")
		}
	}
	return t, nil
}

func parseCells(cells []string) []interface{} {
	if numbers, ok := parseNumbers(cells); ok {
		return numbers
	}
	if times, ok := parseTimes(cells); ok {
		return times
	}
	return Values(cells...)
}

func parseNumbers(cells []string) ([]interface{}, bool) {
	numbers := make([]interface{}, len(cells))
	for i, cell := range cells {
		n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		numbers[i] = n
	}
	return numbers, true
}

func parseTimes(cells []string) ([]interface{}, bool) {
	times := make([]interface{}, len(cells))
	for i, cell := range cells {
		t, err := ParseTime(cell)
		if err != nil {
			return nil, false
		}
		times[i] = t
	}
	return times, true
}

// ParseTime parses an RFC3339 timestamp, or a date or timestamp in any of
// the layouts understood by github.com/araddon/dateparse.
func ParseTime(s string) (t time.Time, err error) {
	// dateparse panics on some malformed input
	defer func() {
		if r := recover(); r != nil {
			t, err = time.Time{}, errors.Errorf("%q is not a date: %v", s, r)
		}
	}()
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if tm, err := time.Parse(time.RFC3339, s); err == nil {
		return tm, nil
	}
	return dateparse.ParseAny(s)
}

type yamlColumn struct {
	Label  string        `json:"label"`
	Values []interface{} `json:"values"`
}

// ReadYAML reads a table from YAML input shaped like
//
//	- label: Sizes
//	  values: [S, M, L, XL]
//	- label: Waists
//	  values: [30, 34, 38, 42]
//
// Numbers are read as float64s. A column of strings that all parse as
// dates is read as time.Times.
func ReadYAML(data []byte) (*Table, error) {
	var columns []yamlColumn
	if err := yaml.Unmarshal(data, &columns); err != nil {
		return nil, errors.Wrap(err, "reading YAML")
	}
	t := New()
	for i, column := range columns {
		if column.Label == "" {
			return nil, errors.Errorf("reading YAML: column %v is missing its label", i)
		}
		values := column.Values
		if cells, ok := stringCells(values); ok && len(cells) > 0 {
			if times, ok := parseTimes(cells); ok {
				values = times
			}
		}
		var err error
		t, err = t.WithColumn(column.Label, values)
		if err != nil {
			return nil, errors.Wrap(err, "reading YAML")
		}
	}
	return t, nil
}

func stringCells(values []interface{}) ([]string, bool) {
	cells := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		cells[i] = s
	}
	return cells, true
}
