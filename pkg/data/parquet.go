package data

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// SaveParquet writes t to path as a snappy-compressed Parquet file.
// Column names are reduced to [A-Za-z0-9_] since Parquet tags are comma-separated.
func SaveParquet(t *Table, path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return IOError(stageWrite, "", errors.Wrap(err, "failed to create directory"))
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return IOError(stageWrite, "", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = IOError(stageWrite, "", cerr)
		}
	}()

	fields := parquetFieldNames(t)
	pfw := writerfile.NewWriterFile(file)
	pw, err := writer.NewJSONWriter(buildParquetSchema(t, fields), pfw, 1)
	if err != nil {
		return IOError(stageWrite, "", errors.Wrap(err, "failed to create parquet writer"))
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	row := make(map[string]any, t.Width())
	for i := 0; i < t.Rows(); i++ {
		for j, c := range t.Columns() {
			row[fields[j]] = parquetValue(c, i)
		}
		rec, err := json.Marshal(row)
		if err != nil {
			_ = pw.WriteStop()
			return IOError(stageWrite, "", errors.Wrapf(err, "failed to encode row %d", i))
		}
		if err := pw.Write(string(rec)); err != nil {
			_ = pw.WriteStop()
			return IOError(stageWrite, "", errors.Wrapf(err, "failed to write row %d", i))
		}
	}
	if err := pw.WriteStop(); err != nil {
		return IOError(stageWrite, "", errors.Wrap(err, "failed to finalize parquet file"))
	}
	slog.Info("Wrote Parquet file",
		slog.String("path", path),
		slog.Int("rows", t.Rows()),
		slog.Int("columns", t.Width()))
	return nil
}

func buildParquetSchema(t *Table, fields []string) string {
	defs := make([]map[string]string, 0, t.Width())
	for j, c := range t.Columns() {
		defs = append(defs, map[string]string{
			"Tag": fmt.Sprintf("name=%s, %s, repetitiontype=OPTIONAL", fields[j], parquetType(c.Kind)),
		})
	}
	out := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": defs,
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func parquetType(k Kind) string {
	switch k {
	case Numeric:
		return "type=DOUBLE"
	case Boolean:
		return "type=BOOLEAN"
	default:
		return "type=BYTE_ARRAY, convertedtype=UTF8"
	}
}

func parquetValue(c *Column, i int) any {
	if c.IsMissing(i) {
		return nil
	}
	switch c.Kind {
	case Categorical:
		return c.Strings[i]
	case Boolean:
		return c.Floats[i] != 0
	default:
		return c.Floats[i]
	}
}

// parquetFieldNames maps column names to distinct identifier-safe field names.
func parquetFieldNames(t *Table) []string {
	used := make(map[string]bool, t.Width())
	out := make([]string, t.Width())
	for j, name := range t.Names() {
		f := strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return r
			}
			return '_'
		}, name)
		if f == "" || unicode.IsDigit(rune(f[0])) {
			f = "c_" + f
		}
		base := f
		for n := 1; used[f]; n++ {
			f = fmt.Sprintf("%s_%d", base, n)
		}
		used[f] = true
		out[j] = f
	}
	return out
}
