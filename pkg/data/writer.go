package data

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const stageWrite = "write"

// Save writes t as CSV to path, creating parent directories as needed.
func Save(t *Table, path string) (err error) {
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

	if err := Write(t, file); err != nil {
		return err
	}
	slog.Info("Wrote CSV file",
		slog.String("path", path),
		slog.Int("rows", t.Rows()),
		slog.Int("columns", t.Width()))
	return nil
}

// Write serializes t as CSV: a header row, then one record per row, no index column.
func Write(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Names()); err != nil {
		return IOError(stageWrite, "", errors.Wrap(err, "failed to write header"))
	}

	record := make([]string, t.Width())
	for i := 0; i < t.Rows(); i++ {
		for j, c := range t.Columns() {
			record[j] = c.Format(i)
		}
		if err := writer.Write(record); err != nil {
			return IOError(stageWrite, "", errors.Wrapf(err, "failed to write row %d", i))
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return IOError(stageWrite, "", err)
	}
	return nil
}
