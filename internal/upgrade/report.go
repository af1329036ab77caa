package upgrade

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"example-upgrader/internal/diagnostic"
	"example-upgrader/internal/match"
	"example-upgrader/internal/model"
)

// Report summarizes how an upgraded example was assembled.
type Report struct {
	Root     string       `yaml:"root"`
	Exact    int          `yaml:"exact"`
	Partial  int          `yaml:"partial"`
	None     int          `yaml:"none"`
	Nodes    []ReportNode `yaml:"nodes,omitempty"`
	Warnings []string     `yaml:"warnings,omitempty"`
	Notes    []string     `yaml:"notes,omitempty"`
}

// ReportNode lists one output node that was not reused exactly.
type ReportNode struct {
	Path   string          `yaml:"path"`
	Member string          `yaml:"member"`
	Match  match.MatchType `yaml:"match"`
}

// NewReport builds a Report from a finished upgrade.
func NewReport(result *Result) *Report {
	r := &Report{
		Root:    model.Describe(result.Root.Member),
		Exact:   result.Counts[match.MatchExact],
		Partial: result.Counts[match.MatchPartial],
		None:    result.Counts[match.MatchNone],
	}

	result.Root.Walk(func(n *Node) {
		if n.Match == match.MatchExact {
			return
		}

		r.Nodes = append(r.Nodes, ReportNode{
			Path:   n.Path(),
			Member: model.Describe(n.Member),
			Match:  n.Match,
		})
	})

	r.Warnings = diagnosticStrings(result.Diagnostics.Warnings)
	r.Notes = diagnosticStrings(result.Diagnostics.Infos)

	return r
}

// YAML serializes the report.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upgrade report: %w", err)
	}

	return data, nil
}

func diagnosticStrings(diags []diagnostic.Diagnostic) []string {
	var result []string
	for _, d := range diags {
		result = append(result, d.String())
	}

	return result
}
