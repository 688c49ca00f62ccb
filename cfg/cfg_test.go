package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanedra/absint/cfg"
	"github.com/sanedra/absint/expr"
)

// TestNew covers construction and its rejections.
func TestNew(t *testing.T) {
	g, err := cfg.New("1", "5")
	require.NoError(t, err)
	assert.Equal(t, "1", g.Init())
	assert.Equal(t, "5", g.End())
	assert.Equal(t, []string{"1", "5"}, g.Locations())

	_, err = cfg.New("", "5")
	assert.ErrorIs(t, err, cfg.ErrEmptyLocation)

	_, err = cfg.New("1", "1")
	assert.ErrorIs(t, err, cfg.ErrDuplicateLocation)
}

// TestAddLocation covers declaration order, duplicates and widen marking.
func TestAddLocation(t *testing.T) {
	g, err := cfg.New("1", "5")
	require.NoError(t, err)

	require.NoError(t, g.AddLocation("2", cfg.AsWidenPoint()))
	require.NoError(t, g.AddLocation("3"))

	assert.Equal(t, []string{"1", "5", "2", "3"}, g.Locations(), "declaration order is preserved")
	assert.True(t, g.IsWidenPoint("2"))
	assert.False(t, g.IsWidenPoint("3"))
	assert.Equal(t, []string{"2"}, g.WidenPoints())

	assert.ErrorIs(t, g.AddLocation("2"), cfg.ErrDuplicateLocation)
	assert.ErrorIs(t, g.AddLocation(""), cfg.ErrEmptyLocation)

	require.NoError(t, g.MarkWidenPoint("3"))
	assert.True(t, g.IsWidenPoint("3"))
	assert.ErrorIs(t, g.MarkWidenPoint("9"), cfg.ErrUnknownLocation)
}

// TestSetEdge covers insertion, replacement and endpoint validation.
func TestSetEdge(t *testing.T) {
	g, err := cfg.New("1", "5")
	require.NoError(t, err)
	require.NoError(t, g.AddLocation("2"))

	guard := &expr.Guard{Rel: expr.RelLE, A: expr.Var("index"), B: expr.Var("length")}
	asg := expr.Assignment{Target: "length", Expr: expr.Atom(expr.Lit(5))}

	require.NoError(t, g.SetEdge("1", "2", nil, []expr.Assignment{asg}))
	require.NoError(t, g.SetEdge("2", "5", guard, nil))

	e, ok := g.EdgeBetween("1", "2")
	require.True(t, ok)
	assert.Nil(t, e.Guard)
	require.Len(t, e.Assigns, 1)
	assert.Equal(t, asg, e.Assigns[0])

	// Replacement swaps the payload for the same ordered pair.
	require.NoError(t, g.SetEdge("1", "2", guard, nil))
	e, ok = g.EdgeBetween("1", "2")
	require.True(t, ok)
	assert.NotNil(t, e.Guard)
	assert.Empty(t, e.Assigns)

	assert.ErrorIs(t, g.SetEdge("9", "2", nil, nil), cfg.ErrUnknownLocation)
	assert.ErrorIs(t, g.SetEdge("1", "9", nil, nil), cfg.ErrUnknownLocation)
}

// TestIncoming verifies the per-target index and its ordering.
func TestIncoming(t *testing.T) {
	g, err := cfg.New("1", "4")
	require.NoError(t, err)
	require.NoError(t, g.AddLocation("2"))
	require.NoError(t, g.AddLocation("3"))

	require.NoError(t, g.SetEdge("2", "4", nil, nil))
	require.NoError(t, g.SetEdge("3", "4", nil, nil))
	require.NoError(t, g.SetEdge("1", "2", nil, nil))

	ins := g.Incoming("4")
	require.Len(t, ins, 2)
	assert.Equal(t, "2", ins[0].From, "incoming edges keep insertion order")
	assert.Equal(t, "3", ins[1].From)

	// Replacing an edge keeps its position.
	require.NoError(t, g.SetEdge("2", "4", nil, []expr.Assignment{
		{Target: "access", Expr: expr.Atom(expr.Lit(0))},
	}))
	ins = g.Incoming("4")
	require.Len(t, ins, 2)
	assert.Equal(t, "2", ins[0].From)
	assert.Len(t, ins[0].Assigns, 1)

	assert.Empty(t, g.Incoming("1"), "entry has no incoming edges")
}

// TestString verifies the debug dump contains guards and assignments in
// the documented form.
func TestString(t *testing.T) {
	g, err := cfg.New("1", "3")
	require.NoError(t, err)
	require.NoError(t, g.AddLocation("2"))

	guard := &expr.Guard{Rel: expr.RelGT, A: expr.Var("index"), B: expr.Var("length")}
	require.NoError(t, g.SetEdge("1", "2", nil, []expr.Assignment{
		{Target: "length", Expr: expr.Atom(expr.Lit(5))},
	}))
	require.NoError(t, g.SetEdge("2", "3", guard, nil))

	dump := g.String()
	assert.Contains(t, dump, "1 -> 2")
	assert.Contains(t, dump, "[True]")
	assert.Contains(t, dump, "@<length := 5>")
	assert.Contains(t, dump, "[index > length]")
}
