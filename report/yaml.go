package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/demand"
	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/extension"
)

// Document is the YAML shape of a Solution.
type Document struct {
	RunID         string         `yaml:"run_id"`
	Algorithm     string         `yaml:"algorithm"`
	Status        string         `yaml:"status"`
	K             int            `yaml:"k"`
	Cost          int            `yaml:"cost"`
	ElapsedMS     int64          `yaml:"elapsed_ms"`
	TrialsPerStep int            `yaml:"trials_per_step,omitempty"`
	Evaluated     int            `yaml:"evaluated"`
	Mappings      [][]int        `yaml:"mappings,flow"`
	Additions     []demand.Entry `yaml:"additions"`
}

// NewDocument converts sol. Slices are copied.
func NewDocument(sol *extension.Solution) Document {
	d := Document{
		RunID:         sol.RunID.String(),
		Algorithm:     sol.Algorithm.String(),
		Status:        sol.Status.String(),
		K:             sol.K,
		Cost:          sol.Cost,
		ElapsedMS:     sol.Elapsed.Milliseconds(),
		TrialsPerStep: sol.TrialsPerStep,
		Evaluated:     sol.Evaluated,
		Mappings:      make([][]int, len(sol.Mappings)),
		Additions:     append([]demand.Entry{}, sol.Additions...),
	}
	for i, m := range sol.Mappings {
		d.Mappings[i] = append([]int(nil), m...)
	}

	return d
}

// WriteYAML encodes sol as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, sol *extension.Solution) error {
	if sol == nil {
		return ErrNilInput
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(sol)); err != nil {
		return err
	}

	return enc.Close()
}
