package reqid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	id := New()
	require.False(t, id.IsZero())

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := New()
	for range 100 {
		next := New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA!"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at.Truncate(time.Millisecond), id.Time())

	require.True(t, Zero.Time().IsZero())
	require.True(t, ID("garbage").Time().IsZero())
}
