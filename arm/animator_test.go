package arm

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChain(t *testing.T, n int) *Chain {
	t.Helper()
	c, err := NewChain(mgl64.Vec3{}, unitSegments(n)...)
	require.NoError(t, err)
	return c
}

func TestSweepDefaults(t *testing.T) {
	a, err := NewAnimator(testChain(t, 4), AnimatorOptions{})
	require.NoError(t, err)

	first, err := a.Tick()
	require.NoError(t, err)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, []float64{0, 0, 0, 0}, first.Angles)
	assert.InDelta(t, 4, first.Tip().X(), eps)

	var last Frame
	n := 1
	for !a.Done() {
		last, err = a.Tick()
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, DefaultSweepFrames, n)
	assert.Equal(t, DefaultSweepFrames-1, last.Index)
	for _, q := range last.Angles {
		assert.InDelta(t, math.Pi/8, q, eps)
	}
	assert.InDelta(t, 4*math.Pi/8, last.Poses[3].Angle, eps)

	_, err = a.Tick()
	assert.ErrorIs(t, err, ErrDone)
}

func TestSweepLinspace(t *testing.T) {
	a, err := NewAnimator(testChain(t, 2), AnimatorOptions{From: 1, To: 2, Frames: 5})
	require.NoError(t, err)
	want := []float64{1, 1.25, 1.5, 1.75, 2}
	for _, w := range want {
		f, err := a.Tick()
		require.NoError(t, err)
		assert.InDelta(t, w, f.Angles[0], eps)
		assert.InDelta(t, w, f.Angles[1], eps)
	}
	assert.True(t, a.Done())

	a.Reset()
	assert.False(t, a.Done())
	assert.Equal(t, 0, a.Frame())
}

func TestSweepSingleFrame(t *testing.T) {
	a, err := NewAnimator(testChain(t, 1), AnimatorOptions{From: 0.5, To: 3, Frames: 1})
	require.NoError(t, err)
	f, err := a.Tick()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f.Angles[0], eps)
	assert.True(t, a.Done())
}

func TestIncrement(t *testing.T) {
	a, err := NewAnimator(testChain(t, 3), AnimatorOptions{Motion: MotionIncrement})
	require.NoError(t, err)

	for k := 1; k <= 1000; k++ {
		f, err := a.Tick()
		require.NoError(t, err)
		assert.InDelta(t, float64(k)*DefaultDelta, f.Angles[2], 1e-9)
	}
	assert.False(t, a.Done())
	assert.InDelta(t, 1000*DefaultDelta, a.Angles()[0], 1e-9)
}

func TestIncrementOffsetAndInitial(t *testing.T) {
	a, err := NewAnimator(testChain(t, 2), AnimatorOptions{
		Motion:  MotionIncrement,
		Delta:   0.1,
		Offset:  0.5,
		Initial: []float64{1, 2},
	})
	require.NoError(t, err)

	f, err := a.Tick()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.6, 2.1}, f.Angles, eps)
	// Offset 不会累加进状态
	assert.InDeltaSlice(t, []float64{1.1, 2.1}, a.Angles(), eps)
	assert.InDelta(t, 1.6+2.1, f.Poses[1].Angle, eps)

	a.Reset()
	assert.InDeltaSlice(t, []float64{1, 2}, a.Angles(), eps)
}

func TestAnglesIsCopy(t *testing.T) {
	a, err := NewAnimator(testChain(t, 2), AnimatorOptions{Motion: MotionIncrement})
	require.NoError(t, err)
	got := a.Angles()
	got[0] = 42
	assert.Equal(t, []float64{0, 0}, a.Angles())
}

func TestNewAnimatorErrors(t *testing.T) {
	c := testChain(t, 3)

	_, err := NewAnimator(nil, AnimatorOptions{})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAnimator(c, AnimatorOptions{Initial: []float64{0, 0}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAnimator(c, AnimatorOptions{Motion: Motion(7)})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAnimator(c, AnimatorOptions{Frames: -1})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewAnimator(c, AnimatorOptions{Motion: MotionIncrement, Delta: math.NaN()})
	assert.ErrorIs(t, err, ErrNumeric)

	_, err = NewAnimator(c, AnimatorOptions{Initial: []float64{0, math.Inf(1), 0}})
	assert.ErrorIs(t, err, ErrNumeric)
}

func TestParseMotion(t *testing.T) {
	for _, s := range []string{"", "sweep"} {
		m, err := ParseMotion(s)
		require.NoError(t, err)
		assert.Equal(t, MotionSweep, m)
	}
	m, err := ParseMotion("increment")
	require.NoError(t, err)
	assert.Equal(t, MotionIncrement, m)
	assert.Equal(t, "increment", m.String())

	_, err = ParseMotion("wobble")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestOffsetShiftsEachCumulativeAngleOnce(t *testing.T) {
	const offset = 0.1
	plain, err := NewAnimator(testChain(t, 4), AnimatorOptions{Motion: MotionIncrement, Delta: 0.2})
	require.NoError(t, err)
	shifted, err := NewAnimator(testChain(t, 4), AnimatorOptions{Motion: MotionIncrement, Delta: 0.2, Offset: offset})
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		p, err := plain.Tick()
		require.NoError(t, err)
		s, err := shifted.Tick()
		require.NoError(t, err)
		for i := range s.Poses {
			assert.InDelta(t, p.Poses[i].Angle+offset, s.Poses[i].Angle, eps, "tick %d segment %d", k, i)
		}
	}
}
