package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"time"
)

// SourceDigest records the size and SHA256 checksum of a stream read through it.
type SourceDigest struct {
	hash hash.Hash
	size int64
}

// NewSourceDigest creates an empty digest.
func NewSourceDigest() *SourceDigest {
	return &SourceDigest{hash: sha256.New()}
}

// Wrap returns a reader that feeds every byte read from r into the digest.
func (d *SourceDigest) Wrap(r io.Reader) io.Reader {
	return io.TeeReader(r, d)
}

// Write implements io.Writer.
func (d *SourceDigest) Write(p []byte) (int, error) {
	d.size += int64(len(p))

	return d.hash.Write(p)
}

// Checksum returns the hex encoded SHA256 of the bytes seen so far.
func (d *SourceDigest) Checksum() string {
	return hex.EncodeToString(d.hash.Sum(nil))
}

// Size returns the number of bytes seen so far.
func (d *SourceDigest) Size() int64 {
	return d.size
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
