package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTimestampUsesUTCMilliseconds(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 1, 5, 12, 30, 0, 123456789, loc)

	require.Equal(t, "2024-01-05T10:30:00.123Z", FormatTimestamp(ts))
}

func TestParseTimestampAcceptsBothLayouts(t *testing.T) {
	withMillis, err := ParseTimestamp("2024-01-10T00:00:00.000Z")
	require.NoError(t, err)
	plain, err := ParseTimestamp("2024-01-10T00:00:00Z")
	require.NoError(t, err)
	require.True(t, withMillis.Equal(plain))

	_, err = ParseTimestamp("yesterday")
	require.Error(t, err)
}
