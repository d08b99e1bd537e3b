package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompactDate(t *testing.T) {
	d, err := ParseCompactDate("20181210")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 12, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestParseCompactDateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"dashed", "2018-12-10"},
		{"too short", "2018121"},
		{"too long", "201812100"},
		{"letters", "2018121x"},
		{"empty", ""},
		{"nonexistent day", "20181232"},
		{"nonexistent month", "20181310"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCompactDate(tc.input)
			assert.ErrorIs(t, err, ErrMalformedDate)
		})
	}
}
