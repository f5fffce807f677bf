package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location  string
		bucketURL string
		key       string
	}{
		{"s3://datasets/fitness/megaGym.csv?region=us-east-1", "s3://datasets?region=us-east-1", "fitness/megaGym.csv"},
		{"gs://kb-bucket/nutrition.csv", "gs://kb-bucket", "nutrition.csv"},
		{"file:///tmp/data/nutrition.csv", "file:///", "tmp/data/nutrition.csv"},
	}

	for _, tt := range tests {
		bucketURL, key, err := SplitLocation(tt.location)
		require.NoError(t, err, tt.location)
		assert.Equal(t, tt.bucketURL, bucketURL)
		assert.Equal(t, tt.key, key)
	}

	_, _, err := SplitLocation("s3://bucket-only")
	assert.Error(t, err)
}

func TestOpen_LocalAndFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\nOats\n"), 0o644))

	for _, location := range []string{path, "file://" + filepath.ToSlash(path)} {
		reader, err := Open(context.Background(), location)
		require.NoError(t, err, location)

		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "name\nOats\n", string(content))
		require.NoError(t, reader.Close())
	}
}
