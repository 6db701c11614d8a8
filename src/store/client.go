package store

import (
	"errors"
	"fmt"
)

// ObjectStore is a key/value blob store addressed by (bucket, key).
// Get returns *NotFoundError when the bucket or key does not exist,
// so callers can distinguish a missing object from a real store
// failure.
type ObjectStore interface {
	Get(bucket, key string) ([]byte, error)
	Put(bucket, key string, body []byte) error
}

// NotFoundError reports that a bucket or key does not exist.
type NotFoundError struct {
	Bucket string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: s3://%s/%s", e.Bucket, e.Key)
}

// IsNotFound reports whether err is a missing bucket or key.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
