package interval

import (
	"time"
)

// CalculateBucketTime calculates the start time of the interval bucket.
// Daily buckets start at UTC midnight.
func (i Interval) CalculateBucketTime(timestamp time.Time) time.Time {
	switch i.Name {
	case "1d":
		ts := timestamp.UTC()
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return timestamp.UTC().Truncate(i.Duration)
	}
}

// GetBucketRange returns the start and end time of the interval bucket
func (i Interval) GetBucketRange(timestamp time.Time) (start, end time.Time) {
	start = i.CalculateBucketTime(timestamp)
	end = start.Add(i.Duration)
	return start, end
}

// IsAligned reports whether a timestamp sits exactly on a bucket boundary.
func (i Interval) IsAligned(timestamp time.Time) bool {
	return i.CalculateBucketTime(timestamp).Equal(timestamp.UTC())
}

// IsInBucket checks if a timestamp falls within the same bucket as another timestamp
func (i Interval) IsInBucket(timestamp1, timestamp2 time.Time) bool {
	bucket1 := i.CalculateBucketTime(timestamp1)
	bucket2 := i.CalculateBucketTime(timestamp2)
	return bucket1.Equal(bucket2)
}

// NextBoundary returns the next wall-clock boundary strictly after now.
// The scheduler re-derives every cycle from this so sleep drift never
// accumulates across a long-running session.
func (i Interval) NextBoundary(now time.Time) time.Time {
	return i.CalculateBucketTime(now).Add(i.Duration)
}
