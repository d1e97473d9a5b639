package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-12", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"12.03.2024", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"Mar 12, 2024", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"12 Mar 2024", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, _, err := ParseDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, _, err := ParseDate("not a date")
	assert.Error(t, err)
}

func TestCollectionDate(t *testing.T) {
	fallback := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	text := "Lab Report\nCollected: 2024-03-12\nGlucose 95\n"
	got := CollectionDate(text, fallback)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestCollectionDateHeaderVariants(t *testing.T) {
	fallback := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{
		"Collection Date: 12.03.2024",
		"Date of collection 2024-03-12",
		"Report Date: 2024-03-12",
		"DATE: 2024-03-12",
	} {
		assert.Equal(t, want, CollectionDate(text, fallback), "text %q", text)
	}
}

func TestCollectionDateFallback(t *testing.T) {
	fallback := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	// No date header at all.
	assert.Equal(t, fallback, CollectionDate("Glucose 95 mg/dL", fallback))
	// A header line whose date is unparseable still falls back.
	assert.Equal(t, fallback, CollectionDate("Collected: tomorrow", fallback))
}

func TestToISODate(t *testing.T) {
	d := time.Date(2024, 3, 12, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-12", ToISODate(d))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "12 Mar 2024", CleanDateString("  12   Mar   2024  "))
}
