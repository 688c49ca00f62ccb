// Package: boxes
//
// This file declares the Factory, the Element lattice value, sentinel
// errors, and the small helpers (lookup, copy, normalization, clamped
// stores) every lattice operation and transformer is built from.

package boxes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sanedra/absint/diag"
	"github.com/sanedra/absint/interval"
)

// Sentinel errors for box-domain misuse. These are fatal: they indicate a
// driver bug, not a property of the analyzed program.
var (
	// ErrUnknownVariable indicates an operation referenced an undeclared variable.
	ErrUnknownVariable = errors.New("boxes: unknown variable")

	// ErrUnknownOperator indicates an arithmetic expression used an operator
	// outside + - * %.
	ErrUnknownOperator = errors.New("boxes: unknown arithmetic operator")

	// ErrUnknownRelOp indicates a guard used a relational operator outside
	// < <= == != > >=.
	ErrUnknownRelOp = errors.New("boxes: unknown relational operator")

	// ErrBadRange indicates a variable declaration with min > max.
	ErrBadRange = errors.New("boxes: variable range is inverted")

	// ErrEmptyVariable indicates a declaration with an empty variable name.
	ErrEmptyVariable = errors.New("boxes: variable name is empty")
)

// Element is one value of the box lattice: bottom, or a sparse map in
// normal form. The zero value is top. Construct through Factory.Top,
// Factory.Bot and the transformers; never mutate entries directly.
type Element struct {
	bot     bool
	entries map[string]interval.Interval
}

// IsBot reports whether e is the bottom element.
func (e Element) IsBot() bool { return e.bot }

// IsTop reports whether e is the top element (the empty map).
func (e Element) IsTop() bool { return !e.bot && len(e.entries) == 0 }

// Vars returns the names with explicit entries, sorted. Variables at their
// declared range never appear (normal form).
func (e Element) Vars() []string {
	names := make([]string, 0, len(e.entries))
	for name := range e.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Get returns the stored interval for name and whether one is present.
// Absence means the variable sits at its declared range.
func (e Element) Get(name string) (interval.Interval, bool) {
	iv, ok := e.entries[name]

	return iv, ok
}

// String renders "<BOT>", "<TOP>", or "[x in [l, r], ...]" with variables
// in sorted order.
func (e Element) String() string {
	if e.bot {
		return "<BOT>"
	}
	if len(e.entries) == 0 {
		return "<TOP>"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, name := range e.Vars() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s in %s", name, e.entries[name])
	}
	sb.WriteByte(']')

	return sb.String()
}

// Factory owns the variable descriptors, the landmark set and the
// diagnostic collector, and provides every domain operation. One Factory
// serves one analysis; it is not safe for concurrent use.
type Factory struct {
	defLo, defHi int64                         // range for AddVarDefault
	vars         map[string]interval.Interval  // declared top interval per variable
	landmarks    []int64                       // sorted, duplicates allowed
	diags        diag.Collector
}

// New returns a Factory whose AddVarDefault declarations use the range
// [defaultMin, defaultMax].
func New(defaultMin, defaultMax int64) *Factory {
	return &Factory{
		defLo: defaultMin,
		defHi: defaultMax,
		vars:  make(map[string]interval.Interval),
	}
}

// AddVar declares name with the top interval [lo, hi]. Redeclaring a name
// replaces its range.
func (f *Factory) AddVar(name string, lo, hi int64) error {
	if name == "" {
		return fmt.Errorf("AddVar: %w", ErrEmptyVariable)
	}
	if lo > hi {
		return fmt.Errorf("AddVar(%s, %d, %d): %w", name, lo, hi, ErrBadRange)
	}
	f.vars[name] = interval.Interval{Lo: lo, Hi: hi}

	return nil
}

// AddVarDefault declares name with the factory's default range.
func (f *Factory) AddVarDefault(name string) error {
	return f.AddVar(name, f.defLo, f.defHi)
}

// AddLandmark inserts c into the landmark multiset, keeping it sorted.
func (f *Factory) AddLandmark(c int64) {
	at := sort.Search(len(f.landmarks), func(i int) bool { return f.landmarks[i] >= c })
	f.landmarks = append(f.landmarks, 0)
	copy(f.landmarks[at+1:], f.landmarks[at:])
	f.landmarks[at] = c
}

// Top returns the top element.
func (f *Factory) Top() Element { return Element{} }

// Bot returns the bottom element.
func (f *Factory) Bot() Element { return Element{bot: true} }

// Drain hands out the diagnostics accumulated by the transformers since
// the previous drain.
func (f *Factory) Drain() []diag.Diagnostic {
	return f.diags.Drain()
}

// Format renders e; identical to e.String and present so the Factory
// satisfies formatting-capable domain interfaces.
func (f *Factory) Format(e Element) string { return e.String() }

// topOf returns the declared top interval of name.
func (f *Factory) topOf(name string) (interval.Interval, error) {
	top, ok := f.vars[name]
	if !ok {
		return interval.Interval{}, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}

	return top, nil
}

// intervalOf resolves name through e: the stored entry, or the declared
// top interval when absent.
func (f *Factory) intervalOf(e Element, name string) (interval.Interval, error) {
	if iv, ok := e.entries[name]; ok {
		return iv, nil
	}

	return f.topOf(name)
}

// copyEntries returns a fresh map with the same bindings.
func copyEntries(src map[string]interval.Interval) map[string]interval.Interval {
	dst := make(map[string]interval.Interval, len(src))
	for name, iv := range src {
		dst[name] = iv
	}

	return dst
}

// putClamped stores name ↦ [lo, hi] restricted to the declared range.
// It reports false when [lo, hi] is inverted or the restriction is empty;
// the caller then collapses the element to bottom.
func (f *Factory) putClamped(entries map[string]interval.Interval, name string, lo, hi int64) bool {
	if lo > hi {
		return false
	}
	top := f.vars[name] // caller has resolved name already
	clamped, ok := interval.Intersect(interval.Interval{Lo: lo, Hi: hi}, top)
	if !ok {
		return false
	}
	entries[name] = clamped

	return true
}

// normalized drops entries equal to the declared top interval and wraps
// the map as an Element. Lattice equality relies on this.
func (f *Factory) normalized(entries map[string]interval.Interval) Element {
	for name, iv := range entries {
		if iv.Eq(f.vars[name]) {
			delete(entries, name)
		}
	}

	return Element{entries: entries}
}
