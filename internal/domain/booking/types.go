package booking

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is never produced here; it is a legitimate historical
	// value written by other parts of the system and must survive a
	// round-trip through storage.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsDeclined reports whether the booking never takes effect. Declined
// bookings are invisible to last/next schedule lookups.
func (s Status) IsDeclined() bool {
	return s == StatusRejected || s == StatusCanceled
}

// Bucket is the temporal/status classification used by booking list queries.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketPast     Bucket = "PAST"
	BucketFuture   Bucket = "FUTURE"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

// ParseBucket converts an incoming state token into a Bucket. Matching is
// case-insensitive; unrecognized tokens fail with ErrUnknownBucket.
func ParseBucket(token string) (Bucket, error) {
	switch Bucket(strings.ToUpper(token)) {
	case BucketAll:
		return BucketAll, nil
	case BucketCurrent:
		return BucketCurrent, nil
	case BucketPast:
		return BucketPast, nil
	case BucketFuture:
		return BucketFuture, nil
	case BucketWaiting:
		return BucketWaiting, nil
	case BucketRejected:
		return BucketRejected, nil
	default:
		return "", errs.Mark(errs.New("unknown state: "+token), errs.ErrUnknownBucket)
	}
}
