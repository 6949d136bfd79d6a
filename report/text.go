package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/extension"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/mapping"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/multigraph"
)

const (
	ruleHeavy = "============================================================"
	ruleLight = "------------------------------------------------------------"
)

// ErrNilInput is returned when the solution or a graph is nil.
var ErrNilInput = errors.New("report: nil solution or graph")

// textWriter remembers the first write error so the rendering code can stay
// linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// WriteText renders sol for pattern g and host h.
//
// Layout:
//   - summary (algorithm, status, k, time, cost, trials);
//   - G and H adjacency, one row per line;
//   - H extended by the additions, changed cells shown as "orig+added";
//   - the edge additions as a list;
//   - each mapping as a placement matrix (rows: pattern vertices,
//     columns: host vertices) followed by "u→f(u)" pairs.
func WriteText(w io.Writer, g, h *multigraph.Graph, sol *extension.Solution) error {
	if sol == nil || g == nil || h == nil {
		return ErrNilInput
	}
	t := &textWriter{w: w}

	t.printf("%s\nMinimal k-Isomorphic Subgraph Extension - Solution Report\n%s\n\n", ruleHeavy, ruleHeavy)
	t.printf("Run:        %s\n", sol.RunID)
	t.printf("Algorithm:  %s\n", sol.Algorithm)
	t.printf("Status:     %s\n", sol.Status)
	t.printf("k:          %d (found %d)\n", sol.K, len(sol.Mappings))
	t.printf("Time:       %dms\n", sol.Elapsed.Milliseconds())
	t.printf("Total cost: %d edge(s) added\n", sol.Cost)
	if sol.TrialsPerStep > 0 {
		t.printf("Trials:     %d per step, %d built\n", sol.TrialsPerStep, sol.Evaluated)
	} else {
		t.printf("Subsets:    %d visited\n", sol.Evaluated)
	}
	t.printf("\n")

	section(t, fmt.Sprintf("Graph G (pattern): %d vertices", g.Order()))
	matrix(t, g, nil)
	section(t, fmt.Sprintf("Graph H (host): %d vertices", h.Order()))
	matrix(t, h, nil)

	added := make(map[demand.Edge]int, len(sol.Additions))
	for _, e := range sol.Additions {
		added[e.Edge] = e.Count
	}
	section(t, "Extended H (original+added)")
	matrix(t, h, added)

	section(t, fmt.Sprintf("Edge additions: %d", len(sol.Additions)))
	if len(sol.Additions) == 0 {
		t.printf("  none\n")
	}
	for _, e := range sol.Additions {
		t.printf("  %d -> %d  +%d\n", e.From, e.To, e.Count)
	}
	t.printf("\n")

	section(t, "Mappings")
	for i, m := range sol.Mappings {
		t.printf("Mapping %d of %d: %v\n", i+1, len(sol.Mappings), m)
		placement(t, m, h.Order())
		t.printf("\n")
	}
	t.printf("%s\n", ruleHeavy)

	return t.err
}

func section(t *textWriter, title string) {
	t.printf("%s\n%s\n%s\n", ruleLight, title, ruleLight)
}

// matrix prints g row by row. Cells with an entry in added are rendered as
// "orig+added".
func matrix(t *textWriter, g *multigraph.Graph, added map[demand.Edge]int) {
	var (
		n     = g.Order()
		i, j  int
		cells = make([]string, n)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a := added[demand.Edge{From: i, To: j}]; a > 0 {
				cells[j] = fmt.Sprintf("%d+%d", g.Edge(i, j), a)
			} else {
				cells[j] = fmt.Sprintf("%d", g.Edge(i, j))
			}
		}
		t.printf("  %3d: [%s]\n", i, strings.Join(pad(cells), " "))
	}
	t.printf("\n")
}

// pad right-aligns cells to a common width.
func pad(cells []string) []string {
	width := 0
	for _, c := range cells {
		width = max(width, len(c))
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.Repeat(" ", width-len(c)) + c
	}

	return out
}

// placement prints the 0/1 matrix of mapping m: row u has an "x" in column
// m[u].
func placement(t *textWriter, m mapping.Mapping, n2 int) {
	var b strings.Builder
	b.WriteString("        ")
	for j := 0; j < n2; j++ {
		fmt.Fprintf(&b, "%3d", j)
	}
	t.printf("%s\n", b.String())

	for u, target := range m {
		b.Reset()
		fmt.Fprintf(&b, "  %3d | ", u)
		for j := 0; j < n2; j++ {
			if j == target {
				b.WriteString("  x")
			} else {
				b.WriteString("  .")
			}
		}
		t.printf("%s\n", b.String())
	}

	pairs := make([]string, len(m))
	for u, target := range m {
		pairs[u] = fmt.Sprintf("%d→%d", u, target)
	}
	t.printf("  %s\n", strings.Join(pairs, "  "))
}
