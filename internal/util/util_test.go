package util

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDigest(t *testing.T) {
	t.Parallel()

	digest := NewSourceDigest()
	data, err := io.ReadAll(digest.Wrap(strings.NewReader("Title,Desc\nPush-up,Bodyweight press\n")))

	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), digest.Size())
	assert.Len(t, digest.Checksum(), 64)

	empty := NewSourceDigest()
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", empty.Checksum())
	assert.Zero(t, empty.Size())
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "small csv", bytes: 900, expected: "900 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "nutrition dataset", bytes: 3 * 1024 * 1024, expected: "3.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "quick batch", duration: 4*time.Second + 200*time.Millisecond, expected: "4s"},
		{name: "rounds up to a minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "full ingestion", duration: 12*time.Minute + 5*time.Second, expected: "12m5s"},
		{name: "hours", duration: 2*time.Hour + 15*time.Minute, expected: "2h15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
