package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xpense/internal/model"
	"xpense/internal/store"
)

var sampleRecords = []model.Record{
	{Category: "Food", Description: "Lunch", Amount: 12.50},
	{Category: "Transport", Description: "Bus fare", Amount: 2.25},
}

func TestExport_ReadBackByStore(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "expense_report_export.csv")

	require.NoError(t, Export(sampleRecords, dest))

	// The export format is the store format, so the store must be able
	// to read it back unchanged.
	result, err := store.New(dest, true).List()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords, result.Records)
	assert.Zero(t, result.Skipped)
}

func TestExport_Idempotent(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, Export(sampleRecords, dest))
	first, err := os.ReadFile(dest)
	require.NoError(t, err)

	require.NoError(t, Export(sampleRecords, dest))
	second, err := os.ReadFile(dest)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-export of the same records must be byte-identical")
}

func TestExport_OverwritesExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(dest, []byte("stale old report\n"), 0o644))

	require.NoError(t, Export(sampleRecords, dest))

	result, err := store.New(dest, true).List()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords, result.Records)
}

func TestExport_EmptyRecords(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, Export(nil, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "category,description,amount\n", string(data), "empty export is just the header")
}

func TestExport_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.csv")

	require.NoError(t, Export(sampleRecords, dest))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.csv", entries[0].Name())
}

func TestExport_BadDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "no-such-dir", "report.csv")

	err := Export(sampleRecords, dest)
	assert.Error(t, err)
}

func TestExport_QuotedFields(t *testing.T) {
	records := []model.Record{
		{Category: "Food", Description: `dinner, with "friends"`, Amount: 80},
	}
	dest := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, Export(records, dest))

	result, err := store.New(dest, true).List()
	require.NoError(t, err)
	assert.Equal(t, records, result.Records)
}
