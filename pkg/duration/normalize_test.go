package duration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timespan-tools/timespan-go/pkg/duration"
)

func TestNormalizeFoldsMillisecondsAcrossAllUnits(t *testing.T) {
	d := duration.FromMilliseconds(1733140034227)

	got, err := d.Normalize()
	require.NoError(t, err)

	assert.Equal(t, 54.0, *got.Years)
	assert.Equal(t, 349.0, *got.Days)
	assert.Equal(t, 11.0, *got.Hours)
	assert.Equal(t, 47.0, *got.Minutes)
	assert.Equal(t, 14.0, *got.Seconds)
	assert.Equal(t, 227.0, *got.Milliseconds)
}

func TestNormalizeRoundTripsTotal(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 86399999, 86400000, 31536000000, 1733140034227} {
		got, err := duration.FromMilliseconds(ms).Normalize()
		require.NoError(t, err)

		total, err := got.TotalMilliseconds()
		require.NoError(t, err)
		assert.Equal(t, ms, total, "total after normalize for %d ms", ms)

		// Every unit below the largest present one obeys its bound.
		assert.Less(t, *got.Milliseconds, 1000.0)
		assert.Less(t, *got.Seconds, 60.0)
		assert.Less(t, *got.Minutes, 60.0)
		assert.Less(t, *got.Hours, 24.0)
		assert.Less(t, *got.Days, 365.0)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	d := duration.Duration{
		Years:        duration.Ptr(54),
		Days:         duration.Ptr(349),
		Hours:        duration.Ptr(11),
		Minutes:      duration.Ptr(47),
		Seconds:      duration.Ptr(14),
		Milliseconds: duration.Ptr(227),
	}

	once, err := d.Normalize()
	require.NoError(t, err)
	assert.Equal(t, d, once)

	twice, err := once.Normalize()
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeAllAbsentIsNoOp(t *testing.T) {
	got, err := duration.Duration{}.Normalize()
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestNormalizeSinglePresentFieldAbsorbsEverything(t *testing.T) {
	d := duration.Duration{Milliseconds: duration.Ptr(1733140034227)}

	got, err := d.Normalize()
	require.NoError(t, err)

	assert.Nil(t, got.Years)
	assert.Nil(t, got.Seconds)
	assert.Equal(t, 1733140034227.0, *got.Milliseconds)
}

func TestNormalizeFoldsAbsentUnitsDownward(t *testing.T) {
	tests := []struct {
		name string
		in   duration.Duration
		want duration.Duration
	}{
		{
			name: "absent minutes fold into seconds",
			in: duration.Duration{
				Hours:   duration.Ptr(0),
				Seconds: duration.Ptr(3725),
			},
			want: duration.Duration{
				Hours:   duration.Ptr(1),
				Seconds: duration.Ptr(125),
			},
		},
		{
			name: "absent years fold into days",
			in: duration.Duration{
				Days:  duration.Ptr(800),
				Hours: duration.Ptr(0),
			},
			want: duration.Duration{
				Days:  duration.Ptr(800),
				Hours: duration.Ptr(0),
			},
		},
		{
			name: "largest present unit takes the carry",
			in: duration.Duration{
				Minutes: duration.Ptr(0),
				Seconds: duration.Ptr(90),
			},
			want: duration.Duration{
				Minutes: duration.Ptr(1),
				Seconds: duration.Ptr(30),
			},
		},
		{
			name: "consecutive absent units cascade",
			in: duration.Duration{
				Years:        duration.Ptr(0),
				Milliseconds: duration.Ptr(31536000000),
			},
			want: duration.Duration{
				Years:        duration.Ptr(1),
				Milliseconds: duration.Ptr(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	d := duration.Duration{Seconds: duration.Ptr(0), Milliseconds: duration.Ptr(1500)}

	_, err := d.Normalize()
	require.NoError(t, err)

	assert.Equal(t, 0.0, *d.Seconds)
	assert.Equal(t, 1500.0, *d.Milliseconds)
}

func TestNormalizeRejectsNonIntegerValue(t *testing.T) {
	d := duration.Duration{Seconds: duration.Ptr(1.5)}

	_, err := d.Normalize()
	require.Error(t, err)
	assert.ErrorIs(t, err, duration.ErrNonIntegerValue)

	var durErr *duration.Error
	require.ErrorAs(t, err, &durErr)
	assert.Equal(t, duration.KindNonIntegerValue, durErr.Kind)
	assert.Equal(t, duration.UnitSeconds, durErr.Unit)
	assert.Equal(t, 1.5, durErr.Value)
}
