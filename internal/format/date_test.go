package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAndDateTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

	assert.Equal(t, "05/03/2024", Date(&ts))
	assert.Equal(t, "05/03/2024 14:07", DateTime(&ts))
}

func TestDateTime_Placeholder(t *testing.T) {
	var zero time.Time

	assert.Equal(t, "-", DateTime(nil))
	assert.Equal(t, "-", Date(nil))
	assert.Equal(t, "-", DateTime(&zero))
	assert.Equal(t, "-", DateTimeString(""))
	assert.Equal(t, "-", DateTimeString("not a date"))
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "2024-03-05T14:07:00.000Z", want: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)},
		{input: "2024-03-05T14:07:00Z", want: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)},
		{input: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseISO(tt.input)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestDateTimeString_RoundTrip(t *testing.T) {
	got := DateTimeString("2024-12-31T23:59:00Z")

	assert.NotEmpty(t, got)
	assert.Equal(t, "31/12/2024 23:59", got)
}
