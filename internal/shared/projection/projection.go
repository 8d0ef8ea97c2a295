package projection

import "time"

// TimestampLayout is the wire format for record timestamps: ISO-8601 in UTC
// with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Metadata captures the lifecycle timestamps shared by every stored record.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection is a stored record: the store-assigned identity, the entity's
// domain fields and its lifecycle metadata.
type Projection[T any] struct {
	ID       string
	Entity   T
	Metadata Metadata
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout as well as plain RFC 3339 values.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
