// Package: cfg
//
// This file declares the CFG type, its sentinel errors, the location
// options, and the mutation/query API.

package cfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sanedra/absint/expr"
)

// Sentinel errors for CFG construction.
var (
	// ErrEmptyLocation indicates an empty location identifier.
	ErrEmptyLocation = errors.New("cfg: location ID is empty")

	// ErrDuplicateLocation indicates AddLocation of an existing ID.
	ErrDuplicateLocation = errors.New("cfg: location already exists")

	// ErrUnknownLocation indicates an edge endpoint that was never added.
	ErrUnknownLocation = errors.New("cfg: location not found")
)

// Edge is one directed transition: take it when Guard holds (a nil Guard
// is always taken), then execute Assigns left to right.
type Edge struct {
	From    string
	To      string
	Guard   *expr.Guard
	Assigns []expr.Assignment
}

// LocationOption configures a location at AddLocation time.
type LocationOption func(*locationConfig)

type locationConfig struct {
	widen bool
}

// AsWidenPoint marks the location as a widening point.
func AsWidenPoint() LocationOption {
	return func(c *locationConfig) { c.widen = true }
}

// CFG is one method's control-flow graph. Construct with New; not safe
// for concurrent mutation.
type CFG struct {
	init, end string
	order     []string          // declaration order, drives iteration
	widen     map[string]bool   // widening points
	edges     map[string]*Edge  // key: from + "\x00" + to
	incoming  map[string][]*Edge // per target, edge insertion order
}

// New returns a CFG holding the two designated locations. init and end
// must be distinct non-empty identifiers.
func New(init, end string) (*CFG, error) {
	if init == "" || end == "" {
		return nil, fmt.Errorf("New(%q, %q): %w", init, end, ErrEmptyLocation)
	}
	if init == end {
		return nil, fmt.Errorf("New(%q, %q): %w", init, end, ErrDuplicateLocation)
	}

	return &CFG{
		init:     init,
		end:      end,
		order:    []string{init, end},
		widen:    make(map[string]bool),
		edges:    make(map[string]*Edge),
		incoming: make(map[string][]*Edge),
	}, nil
}

// Init returns the entry location.
func (g *CFG) Init() string { return g.init }

// End returns the exit location.
func (g *CFG) End() string { return g.end }

// AddLocation declares a further control location.
func (g *CFG) AddLocation(id string, opts ...LocationOption) error {
	if id == "" {
		return fmt.Errorf("AddLocation: %w", ErrEmptyLocation)
	}
	if g.has(id) {
		return fmt.Errorf("AddLocation(%q): %w", id, ErrDuplicateLocation)
	}

	var c locationConfig
	for _, opt := range opts {
		opt(&c)
	}

	g.order = append(g.order, id)
	if c.widen {
		g.widen[id] = true
	}

	return nil
}

// MarkWidenPoint marks an existing location as a widening point.
func (g *CFG) MarkWidenPoint(id string) error {
	if !g.has(id) {
		return fmt.Errorf("MarkWidenPoint(%q): %w", id, ErrUnknownLocation)
	}
	g.widen[id] = true

	return nil
}

// IsWidenPoint reports whether id is a widening point.
func (g *CFG) IsWidenPoint(id string) bool { return g.widen[id] }

// Locations returns every location in declaration order.
func (g *CFG) Locations() []string {
	return append([]string(nil), g.order...)
}

// WidenPoints returns the widening points in declaration order.
func (g *CFG) WidenPoints() []string {
	points := make([]string, 0, len(g.widen))
	for _, id := range g.order {
		if g.widen[id] {
			points = append(points, id)
		}
	}

	return points
}

// SetEdge sets the edge from -> to, replacing any existing edge for the
// ordered pair. guard may be nil (unconditional); assigns is copied.
func (g *CFG) SetEdge(from, to string, guard *expr.Guard, assigns []expr.Assignment) error {
	if !g.has(from) {
		return fmt.Errorf("SetEdge(%q, %q): source %w", from, to, ErrUnknownLocation)
	}
	if !g.has(to) {
		return fmt.Errorf("SetEdge(%q, %q): target %w", from, to, ErrUnknownLocation)
	}

	e := &Edge{
		From:    from,
		To:      to,
		Guard:   guard,
		Assigns: append([]expr.Assignment(nil), assigns...),
	}

	key := from + "\x00" + to
	if old, ok := g.edges[key]; ok {
		// Replace in place so the incoming order stays stable.
		*old = *e

		return nil
	}
	g.edges[key] = e
	g.incoming[to] = append(g.incoming[to], e)

	return nil
}

// Incoming returns the edges targeting id, in edge insertion order.
func (g *CFG) Incoming(id string) []Edge {
	ins := g.incoming[id]
	result := make([]Edge, len(ins))
	for i, e := range ins {
		result[i] = *e
	}

	return result
}

// EdgeBetween returns the edge from -> to, if one is set.
func (g *CFG) EdgeBetween(from, to string) (Edge, bool) {
	e, ok := g.edges[from+"\x00"+to]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// has reports whether id was declared.
func (g *CFG) has(id string) bool {
	for _, known := range g.order {
		if known == id {
			return true
		}
	}

	return false
}

// String dumps the graph edge by edge for debugging: the guard in
// brackets ([True] when unconditional) and each assignment as @<...>.
func (g *CFG) String() string {
	var sb strings.Builder
	for _, from := range g.order {
		for _, to := range g.order {
			e, ok := g.EdgeBetween(from, to)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "%s -> %s \n\t", e.From, e.To)
			if e.Guard == nil {
				sb.WriteString(" [True] ")
			} else {
				fmt.Fprintf(&sb, " [%s] ", e.Guard)
			}
			if len(e.Assigns) != 0 {
				sb.WriteString("\n\t")
				for _, a := range e.Assigns {
					fmt.Fprintf(&sb, " @<%s> ", a)
				}
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
