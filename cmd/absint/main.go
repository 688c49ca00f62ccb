// Command absint runs the bundled example analyses: four small
// array-bounds programs built through the CFG driver API, analyzed over
// the box domain, with per-location results printed for inspection.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"github.com/sanedra/absint/boxes"
	"github.com/sanedra/absint/cfg"
	"github.com/sanedra/absint/diag"
	"github.com/sanedra/absint/expr"
	"github.com/sanedra/absint/fixpoint"
)

func main() {
	verbosity := 0
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbosity = 1
		}
	}
	commonlog.Configure(verbosity, nil)

	programs := []struct {
		name  string
		build func() (*cfg.CFG, error)
	}{
		{"bounds001", bounds001},
		{"bounds002", bounds002},
		{"bounds003", bounds003},
		{"bounds004", bounds004},
	}

	for _, p := range programs {
		bold := color.New(color.Bold)
		bold.Printf("== %s ==\n", p.name)

		g, err := p.build()
		if err != nil {
			color.Red("building %s: %s", p.name, err)
			os.Exit(1)
		}
		fmt.Print(g.String())

		if err := run(g); err != nil {
			color.Red("analyzing %s: %s", p.name, err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

// run analyzes g over a fresh box factory and prints the outcome.
func run(g *cfg.CFG) error {
	f := boxes.New(-128, 128)
	for _, name := range []string{"index", "length", "access"} {
		if err := f.AddVar(name, -65536, 65536); err != nil {
			return err
		}
	}

	result, err := fixpoint.Analyze(g, f, f.Top(), f.Bot())
	if err != nil {
		return err
	}

	locs := make([]string, 0, len(result.Values))
	for loc := range result.Values {
		locs = append(locs, loc)
	}
	sort.Strings(locs)

	cyan := color.New(color.FgCyan).SprintFunc()
	for _, loc := range locs {
		fmt.Printf("%s : %s\n", cyan(loc), result.Values[loc])
	}

	for _, d := range result.Diagnostics {
		if d.Kind == diag.DivisionByZero {
			color.Red("%s", d)
		} else {
			color.Yellow("%s", d)
		}
	}
	color.Green("✅ post-fixpoint after %d rounds", result.Iterations)

	return nil
}

// edge builds the guard and assignment payload from the list encoding the
// original drivers use.
func edge(g *cfg.CFG, from, to string, guard []any, assignments ...[]any) error {
	var gp *expr.Guard
	if guard != nil {
		parsed, err := expr.ParseGuard(guard)
		if err != nil {
			return err
		}
		gp = &parsed
	}

	assigns := make([]expr.Assignment, 0, len(assignments))
	for _, a := range assignments {
		parsed, err := expr.ParseAssignment(a)
		if err != nil {
			return err
		}
		assigns = append(assigns, parsed)
	}

	return g.SetEdge(from, to, gp, assigns)
}

// bounds001: branch on index <= length, access either index or the
// out-of-bounds difference.
func bounds001() (*cfg.CFG, error) {
	g, err := cfg.New("1", "5")
	if err != nil {
		return nil, err
	}
	for _, loc := range []string{"2", "3", "4"} {
		if err = g.AddLocation(loc); err != nil {
			return nil, err
		}
	}

	if err = edge(g, "1", "2", nil,
		[]any{"length", []any{5}},
		[]any{"access", []any{0}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "3", []any{">", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "3", "5", nil,
		[]any{"access", []any{"-", "index", "length"}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "4", []any{"<=", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "4", "5", nil,
		[]any{"access", []any{"index"}}); err != nil {
		return nil, err
	}

	return g, nil
}

// bounds002: like bounds001, but the overflow branch clamps to length - 1.
func bounds002() (*cfg.CFG, error) {
	g, err := cfg.New("1", "5")
	if err != nil {
		return nil, err
	}
	for _, loc := range []string{"2", "3", "4"} {
		if err = g.AddLocation(loc); err != nil {
			return nil, err
		}
	}

	if err = edge(g, "1", "2", nil,
		[]any{"length", []any{5}},
		[]any{"access", []any{0}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "3", []any{">", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "3", "5", nil,
		[]any{"access", []any{"-", "length", 1}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "4", []any{"<=", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "4", "5", nil,
		[]any{"access", []any{"index"}}); err != nil {
		return nil, err
	}

	return g, nil
}

// bounds003: full bounds check, also guarding against negative indices.
func bounds003() (*cfg.CFG, error) {
	g, err := cfg.New("1", "6")
	if err != nil {
		return nil, err
	}
	for _, loc := range []string{"2", "3", "4", "5"} {
		if err = g.AddLocation(loc); err != nil {
			return nil, err
		}
	}

	if err = edge(g, "1", "2", nil,
		[]any{"length", []any{5}},
		[]any{"access", []any{0}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "4", []any{">", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "3", []any{"<=", "index", "length"}); err != nil {
		return nil, err
	}
	if err = edge(g, "3", "4", []any{"<", "index", 0}); err != nil {
		return nil, err
	}
	if err = edge(g, "3", "5", []any{">=", "index", 0}); err != nil {
		return nil, err
	}
	if err = edge(g, "4", "6", nil,
		[]any{"access", []any{"-", "length", 1}}); err != nil {
		return nil, err
	}
	if err = edge(g, "5", "6", nil,
		[]any{"access", []any{"index"}}); err != nil {
		return nil, err
	}

	return g, nil
}

// bounds004: the modulo example; index % 2 lands in [-1, 1].
func bounds004() (*cfg.CFG, error) {
	g, err := cfg.New("1", "3")
	if err != nil {
		return nil, err
	}
	if err = g.AddLocation("2"); err != nil {
		return nil, err
	}

	if err = edge(g, "1", "2", nil,
		[]any{"length", []any{5}},
		[]any{"access", []any{0}}); err != nil {
		return nil, err
	}
	if err = edge(g, "2", "3", nil,
		[]any{"index", []any{"%", "index", 2}}); err != nil {
		return nil, err
	}

	return g, nil
}
