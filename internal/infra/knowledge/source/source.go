// Package source opens dataset files from local paths or bucket URLs.
package source

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// Open returns a reader for location, which is either a local path
// or a bucket URL such as s3://bucket/data/nutrition.csv.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.Contains(location, "://") {
		file, err := os.Open(location)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return file, nil
	}

	bucketURL, key, err := SplitLocation(location)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		_ = bucket.Close()

		return nil, errors.Wrapf(err, "failed to open %s", location)
	}

	return &bucketReader{Reader: reader, bucket: bucket}, nil
}

// SplitLocation splits a bucket URL into the bucket URL and the object key.
func SplitLocation(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid location %q", location)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", errors.Errorf("location %q has no object key", location)
	}

	bucketURL := u.Scheme + "://" + u.Host
	if u.Scheme == "file" {
		bucketURL = "file:///"
	}
	if u.RawQuery != "" {
		bucketURL += "?" + u.RawQuery
	}

	return bucketURL, key, nil
}

// bucketReader closes the bucket together with the object reader.
type bucketReader struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (r *bucketReader) Close() error {
	readErr := r.Reader.Close()
	bucketErr := r.bucket.Close()
	if readErr != nil {
		return errors.WithStack(readErr)
	}

	return errors.WithStack(bucketErr)
}
