package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

func dateParser(date time.Time) TestParser {
	return func(path string) (models.BloodTest, []string, error) {
		return models.BloodTest{Date: date, TestType: filepath.Base(path)}, nil, nil
	}
}

func TestListReportFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "report.xml", "notes.md", "scan.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0750))

	p := NewProcessor(map[string]TestParser{
		".txt": dateParser(time.Time{}),
		".xml": dateParser(time.Time{}),
		".pdf": dateParser(time.Time{}),
	}, &logging.MockLogger{})

	files, err := p.ListReportFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 4)
	// Sorted by name, unsupported extensions and directories excluded.
	assert.Equal(t, "a.txt", filepath.Base(files[0]))
	assert.Equal(t, "b.txt", filepath.Base(files[1]))
	assert.Equal(t, "report.xml", filepath.Base(files[2]))
	assert.Equal(t, "scan.pdf", filepath.Base(files[3]))
}

func TestProcessDirectorySortsChronologically(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.xml"), []byte("x"), 0600))

	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProcessor(map[string]TestParser{
		".txt": dateParser(newer),
		".xml": dateParser(older),
	}, &logging.MockLogger{})

	tests, err := p.ProcessDirectory(dir)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, older, tests[0].Date)
	assert.Equal(t, newer, tests[1].Date)
}

func TestProcessDirectorySkipsFailingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.xml"), []byte("x"), 0600))

	logger := &logging.MockLogger{}
	p := NewProcessor(map[string]TestParser{
		".txt": func(string) (models.BloodTest, []string, error) {
			return models.BloodTest{}, nil, errors.New("unreadable")
		},
		".xml": dateParser(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, logger)

	tests, err := p.ProcessDirectory(dir)
	require.NoError(t, err)
	assert.Len(t, tests, 1)
	assert.True(t, logger.HasEntry("ERROR", "Failed to parse report, skipping"))
}

func TestProcessDirectoryMissingDir(t *testing.T) {
	p := NewProcessor(map[string]TestParser{}, &logging.MockLogger{})

	_, err := p.ProcessDirectory("/nonexistent/reports")
	assert.Error(t, err)
}

func TestCalculateDateRange(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	dr := CalculateDateRange([]models.BloodTest{{Date: jun}, {Date: jan}})
	assert.Equal(t, jan, dr.Start)
	assert.Equal(t, jun, dr.End)

	assert.Equal(t, DateRange{}, CalculateDateRange(nil))
}

func TestGenerateOutputFilename(t *testing.T) {
	dr := DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "history_2024-01-01_2024-06-01.json", GenerateOutputFilename(dr))
	assert.Equal(t, "history.json", GenerateOutputFilename(DateRange{}))
}
