package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const stageLoad = "load"

// missingMarkers are the cell spellings read as "no value".
var missingMarkers = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"null": {}, "NULL": {}, "#N/A": {}, "#NA": {}, "<NA>": {}, "None": {},
}

// IsMissingMarker reports whether s spells a missing value.
func IsMissingMarker(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

// Load reads the CSV file at path into a Table.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, IOError(stageLoad, "", err)
	}
	defer file.Close()

	t, err := Read(file)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded table",
		slog.String("path", path),
		slog.Int("rows", t.Rows()),
		slog.Int("columns", t.Width()))
	return t, nil
}

// Read parses comma-delimited text with a header row. Each column's kind is the
// majority type of its present cells; non-conforming cells become missing.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	// every record must have as many fields as the header
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		return nil, IOError(stageLoad, "", errors.Wrap(err, "malformed csv"))
	}
	if len(records) == 0 {
		return nil, IOError(stageLoad, "", errors.New("no header row"))
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	rows := records[1:]

	t := &Table{index: make(map[string]int, len(header)), rows: len(rows)}
	raw := make([]string, len(rows))
	for j, name := range header {
		if t.Has(name) {
			return nil, IOError(stageLoad, name, errors.New("duplicate column name"))
		}
		for i, rec := range rows {
			raw[i] = rec[j]
		}
		col := inferColumn(name, raw)
		if err := t.Add(col); err != nil {
			return nil, IOError(stageLoad, name, err)
		}
	}
	return t, nil
}

// inferColumn picks numeric, then boolean, then categorical by majority vote.
func inferColumn(name string, raw []string) *Column {
	present, nums, bools := 0, 0, 0
	for _, s := range raw {
		if IsMissingMarker(s) {
			continue
		}
		present++
		if _, ok := parseFinite(s); ok {
			nums++
		} else if _, ok := parseBool(s); ok {
			bools++
		}
	}

	n := len(raw)
	missing := make([]bool, n)
	switch {
	case present == 0 || nums*2 > present:
		vals := make([]float64, n)
		coerced := 0
		for i, s := range raw {
			if IsMissingMarker(s) {
				missing[i] = true
				continue
			}
			v, ok := parseFinite(s)
			if !ok {
				missing[i] = true
				coerced++
				continue
			}
			vals[i] = v
		}
		logCoerced(name, Numeric, coerced)
		return &Column{Name: name, Kind: Numeric, Floats: vals, Missing: missing}
	case bools*2 > present:
		vals := make([]float64, n)
		coerced := 0
		for i, s := range raw {
			if IsMissingMarker(s) {
				missing[i] = true
				continue
			}
			b, ok := parseBool(s)
			if !ok {
				missing[i] = true
				coerced++
				continue
			}
			if b {
				vals[i] = 1
			}
		}
		logCoerced(name, Boolean, coerced)
		return &Column{Name: name, Kind: Boolean, Floats: vals, Missing: missing}
	default:
		vals := make([]string, n)
		for i, s := range raw {
			if IsMissingMarker(s) {
				missing[i] = true
				continue
			}
			vals[i] = s
		}
		return &Column{Name: name, Kind: Categorical, Strings: vals, Missing: missing}
	}
}

// parseFinite parses a float, rejecting spellings of infinity.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func logCoerced(name string, k Kind, n int) {
	if n == 0 {
		return
	}
	slog.Warn("Non-conforming cells read as missing",
		slog.String("column", name),
		slog.String("kind", k.String()),
		slog.Int("cells", n))
}
