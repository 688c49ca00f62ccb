// Package: fixpoint
//
// Purpose:
//   - The chaotic forward iteration: transfer, join, widen, test.
//
// Contract:
//   - Round r recomputes new[loc] = join over incoming transfers, joined
//     with values[loc]; transfers apply the guard first, then the
//     assignments left to right.
//   - Widening replaces new[loc] at widening points once r > Warmup.
//   - The iteration stops when no location strictly increased, i.e.
//     values[loc] ⊑ new[loc] with new[loc] ⊑ values[loc] failing for no
//     location. Locations are visited in declaration order; the order
//     affects convergence speed only, never the result's soundness.
//
// Complexity: O(rounds * E * T) where T is the cost of one transfer;
// with landmark widening the number of rounds is bounded by the warm-up
// plus the landmark count per escaping bound.

package fixpoint

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/sanedra/absint/cfg"
)

var log = commonlog.GetLogger("absint.fixpoint")

// Analyze runs the forward analysis of g over dom, seeding the entry
// location with entry and every other location with other (commonly top
// and bottom). It returns the per-location post-fixpoint.
func Analyze[E any](g *cfg.CFG, dom Domain[E], entry, other E, opts ...Option) (*Result[E], error) {
	if g == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNilCFG)
	}
	if dom == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNilDomain)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	locations := g.Locations()

	values := make(map[string]E, len(locations))
	for _, loc := range locations {
		if loc == g.Init() {
			values[loc] = entry
		} else {
			values[loc] = other
		}
	}

	result := &Result[E]{}

	for round := 0; ; round++ {
		if o.MaxIterations > 0 && round >= o.MaxIterations {
			result.Values = values
			result.Iterations = round

			return result, fmt.Errorf("Analyze: %d rounds: %w", round, ErrNonTerminating)
		}

		newValues := make(map[string]E, len(locations))
		for _, loc := range locations {
			// Carrying the current value forward keeps the round monotone
			// even for locations no edge targets.
			buffer := values[loc]

			for _, e := range g.Incoming(loc) {
				inflow := values[e.From]

				var err error
				if e.Guard != nil {
					inflow, err = dom.Assume(inflow, *e.Guard)
					if err != nil {
						return nil, fmt.Errorf("Analyze: edge %s -> %s: %w", e.From, e.To, err)
					}
				}
				for _, as := range e.Assigns {
					inflow, err = dom.Assign(inflow, as)
					if err != nil {
						return nil, fmt.Errorf("Analyze: edge %s -> %s: %w", e.From, e.To, err)
					}
				}
				result.collect(dom, loc)

				buffer = dom.Join(buffer, inflow)
			}
			newValues[loc] = buffer
		}

		if round > o.Warmup {
			for _, wp := range g.WidenPoints() {
				newValues[wp] = dom.Widen(values[wp], newValues[wp])
			}
		}

		// Post-fixpoint test: stop when no location strictly increased.
		increased := false
		for _, loc := range locations {
			growing := dom.Order(values[loc], newValues[loc]) && !dom.Order(newValues[loc], values[loc])
			if growing {
				increased = true
				break
			}
		}

		values = newValues
		result.Iterations = round + 1
		log.Debugf("round %d done (widening %v, increased %v)", round, round > o.Warmup, increased)

		if !increased {
			break
		}
	}

	result.Values = values
	log.Debugf("post-fixpoint after %d rounds, %d diagnostics", result.Iterations, len(result.Diagnostics))

	return result, nil
}

// collect drains the domain's pending diagnostics and stamps them with
// the location the transfer targeted.
func (r *Result[E]) collect(dom Domain[E], loc string) {
	for _, d := range dom.Drain() {
		d.Location = loc
		r.Diagnostics = append(r.Diagnostics, d)
	}
}
