package boxes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanedra/absint/boxes"
)

// TestWiden_UpperToLandmark verifies an increased upper bound jumps to the
// smallest landmark strictly above it.
func TestWiden_UpperToLandmark(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(100)

	old := elem(t, f, "index", 0, 3)
	next := elem(t, f, "index", 0, 4)

	got, _ := f.Widen(old, next).Get("index")
	assert.Equal(t, "[0, 100]", got.String())
}

// TestWiden_LowerToLandmark verifies a decreased lower bound drops to the
// largest landmark strictly below it.
func TestWiden_LowerToLandmark(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(-50)
	f.AddLandmark(100)

	old := elem(t, f, "index", 0, 10)
	next := elem(t, f, "index", -1, 10)

	got, _ := f.Widen(old, next).Get("index")
	assert.Equal(t, "[-50, 10]", got.String())
}

// TestWiden_EscapeToDeclaredRange verifies both bounds escape to the
// declared range when no landmark applies.
func TestWiden_EscapeToDeclaredRange(t *testing.T) {
	f := newFactory(t)

	old := elem(t, f, "index", 0, 3)
	next := elem(t, f, "index", -1, 4)

	assert.True(t, f.Widen(old, next).IsTop(),
		"escaping to the full declared range normalizes the entry away")
}

// TestWiden_ZeroLandmark verifies a landmark of value 0 is usable.
func TestWiden_ZeroLandmark(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(0)

	old := elem(t, f, "index", 2, 10)
	next := elem(t, f, "index", 1, 10)

	got, _ := f.Widen(old, next).Get("index")
	assert.Equal(t, "[0, 10]", got.String(), "landmark 0 must stop the descent")
}

// TestWiden_UnchangedBoundsKept verifies stable bounds are not widened.
func TestWiden_UnchangedBoundsKept(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(100)

	old := elem(t, f, "index", 0, 10)
	next := elem(t, f, "index", 2, 10)

	got, _ := f.Widen(old, next).Get("index")
	assert.Equal(t, "[2, 10]", got.String(), "a shrinking iterate is kept as-is")
}

// TestWiden_Bottom verifies the bottom conventions: a copy of the other side.
func TestWiden_Bottom(t *testing.T) {
	f := newFactory(t)
	a := elem(t, f, "index", 0, 3)

	assert.True(t, f.Equal(f.Widen(f.Bot(), a), a))
	assert.True(t, f.Equal(f.Widen(a, f.Bot()), a))
	assert.True(t, f.Widen(f.Bot(), f.Bot()).IsBot())
}

// TestWiden_Extensive verifies new ⊑ widen(old, new) across a few shapes.
func TestWiden_Extensive(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(100)

	cases := []struct{ oldLo, oldHi, newLo, newHi int }{
		{0, 3, 0, 4},
		{0, 3, -2, 3},
		{0, 3, -2, 200},
		{5, 5, 5, 5},
	}
	for _, tc := range cases {
		old := elem(t, f, "index", tc.oldLo, tc.oldHi)
		next := elem(t, f, "index", tc.newLo, tc.newHi)
		assert.True(t, f.Order(next, f.Widen(old, next)),
			"widen(%v, %v) must sit above its second argument", old, next)
	}
}

// TestWiden_Stabilizes verifies the ascending chain through widening
// reaches a fixed element in finitely many steps.
func TestWiden_Stabilizes(t *testing.T) {
	f := newFactory(t)
	f.AddLandmark(100)

	cur := elem(t, f, "index", 0, 0)
	for i := 0; i < 10; i++ {
		bumped, err := f.SetInterval(cur, "index", 0, mustHi(t, cur)+1)
		require.NoError(t, err)
		widened := f.Widen(cur, bumped)
		if f.Equal(widened, cur) {
			return // stabilized
		}
		cur = widened
	}

	t.Fatal("widening chain did not stabilize within 10 steps")
}

// mustHi reads the stored upper bound of index in e.
func mustHi(t *testing.T, e boxes.Element) int64 {
	t.Helper()

	iv, ok := e.Get("index")
	if !ok {
		return 65536 // declared maximum when unconstrained
	}

	return iv.Hi
}
