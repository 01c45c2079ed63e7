// Package exporter snapshots expense records to a CSV report file.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"xpense/internal/model"
)

// Export writes records to destPath in the store's column order,
// overwriting any existing file. The data goes to a temp file in the
// destination directory first and is renamed into place, so a failed
// export never leaves a truncated report behind.
func Export(records []model.Record, destPath string) error {
	dir := filepath.Dir(destPath)

	tmp, err := os.CreateTemp(dir, ".xpense-export-*")
	if err != nil {
		return fmt.Errorf("creating temp export file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAll(tmp, records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing export: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming export into place: %w", err)
	}
	return nil
}

func writeAll(f *os.File, records []model.Record) error {
	w := csv.NewWriter(f)

	if err := w.Write(model.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec.Fields()); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
