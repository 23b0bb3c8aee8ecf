package carousel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextAndPrevWrap(t *testing.T) {
	t.Parallel()

	s := New(3, 0)
	s = s.Next().Next()
	require.Equal(t, 2, s.Current)
	require.Equal(t, 0, s.Next().Current)
	require.Equal(t, 2, New(3, 0).Prev().Current)
}

func TestNewClampsStart(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, New(3, 1).Current)
	require.Equal(t, 0, New(3, 7).Current)
	require.Equal(t, 0, New(3, -1).Current)
	require.Equal(t, State{}, New(0, 0).Next().Prev())
}

func TestShowIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	s := New(4, 1)
	require.Equal(t, 3, s.Show(3).Current)
	require.Equal(t, 1, s.Show(4).Current)
	require.Equal(t, 1, s.Show(-1).Current)
	require.True(t, s.Show(3).Active(3))
}

func TestSwipe(t *testing.T) {
	t.Parallel()

	s := New(3, 1)
	require.Equal(t, 2, s.Swipe(300, 200).Current, "swipe left")
	require.Equal(t, 0, s.Swipe(200, 300).Current, "swipe right")
	require.Equal(t, 1, s.Swipe(200, 150).Current, "at threshold")
	require.Equal(t, 1, s.Swipe(200, 230).Current, "short")
}

func TestDelayHoldsRotationAfterManualInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, ResumeAfterTouch, Delay(ActionSwipe))
	require.Equal(t, ResumeAfterDot, Delay(ActionShow))
	require.Equal(t, Interval, Delay(ActionNext))
	require.Equal(t, Interval, Delay(ActionPrev))
	require.Equal(t, Interval, Delay(Action("bogus")))
}
