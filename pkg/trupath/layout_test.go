package trupath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaveHalves(t *testing.T) {
	assert.Equal(t, []int{0, 8, 1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15}, InterleaveHalves(16))
	assert.Equal(t, []int{0, 2, 1, 3}, InterleaveHalves(4))
	assert.Equal(t, []int{0, 2, 1, 3, 4}, InterleaveHalves(5))
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Equal(t, 121, l.OutputRows())

	rect, err := l.Region()
	require.NoError(t, err)
	assert.Equal(t, 7, rect.Row0)
	assert.Equal(t, 199, rect.Row1)
	assert.Equal(t, 3, rect.Col0)
	assert.Equal(t, 19, rect.Col1)
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(l *Layout)
	}{
		{"bad range", func(l *Layout) { l.MeasurementRange = "nope" }},
		{"range rows", func(l *Layout) { l.MeasurementRange = "D8:S198" }},
		{"range cols", func(l *Layout) { l.MeasurementRange = "D8:T199" }},
		{"blocks do not cover replicates", func(l *Layout) { l.Blocks = 5 }},
		{"short interleave", func(l *Layout) { l.Interleave = l.Interleave[:15] }},
		{"repeated interleave", func(l *Layout) { l.Interleave[1] = 0 }},
		{"out of range interleave", func(l *Layout) { l.Interleave[1] = 16 }},
		{"negative separator", func(l *Layout) { l.SeparatorRows = -1 }},
		{"too many channels", func(l *Layout) { l.Channels = 27 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(l)
			err := l.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout))
		})
	}
}

func TestSmallLayout(t *testing.T) {
	// Two blocks of two columns from a 2-channel, 4-replicate range.
	l := &Layout{
		MeasurementRange: "A1:B8",
		Channels:         2,
		Replicates:       4,
		BlockWidth:       2,
		Blocks:           2,
		SeparatorRows:    1,
		Interleave:       []int{1, 0},
	}
	require.NoError(t, l.Validate())
	assert.Equal(t, 5, l.OutputRows())
}
