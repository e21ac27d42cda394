// Package production provides production integrations: export, firing publication,
// synchronised sessions and an in-memory definition registry.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tokennet/internal/primitives"
)

// DefaultVisualizer renders machine definitions as Graphviz DOT, JSON or YAML.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the net. Places are circles labelled
// with their marking (and capacity when bounded), transitions are boxes labelled
// with their role. Guards render as dashed edges. A nil state renders the
// initial marking.
func (v *DefaultVisualizer) ExportDOT(config primitives.MachineConfig, state primitives.Vector) string {
	if state == nil {
		state = config.Initial
	}
	n := config.Places()
	labels := config.Schema.Labels(n)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", config.ID)
	buf.WriteString(`  rankdir=LR;
  node [fontsize=10];
  edge [fontsize=9];
`)

	for i, label := range labels {
		var tokens int64
		if i < len(state) {
			tokens = state[i]
		}
		text := fmt.Sprintf("%s\\n%d", escapeLabel(label), tokens)
		if i < len(config.Capacity) && config.Capacity[i] > 0 {
			text = fmt.Sprintf("%s\\n%d/%d", escapeLabel(label), tokens, config.Capacity[i])
		}
		style := ""
		if tokens > 0 {
			style = ` style=filled fillcolor=lightgreen`
		}
		fmt.Fprintf(&buf, "  %q [shape=circle label=\"%s\"%s];\n", label, text, style)
	}

	for _, name := range config.TransitionNames() {
		t := config.Transitions[name]
		node := transitionNode(name)
		fmt.Fprintf(&buf, "  %q [shape=box label=\"%s\\n(%s)\"];\n",
			node, escapeLabel(name), escapeLabel(t.RoleOrDefault()))

		for i, d := range t.Delta {
			if i >= n {
				break
			}
			switch {
			case d < 0:
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", labels[i], node, -d)
			case d > 0:
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", node, labels[i], d)
			}
		}

		guardNames := make([]string, 0, len(t.Guards))
		for g := range t.Guards {
			guardNames = append(guardNames, g)
		}
		sort.Strings(guardNames)
		for _, g := range guardNames {
			for i, w := range t.Guards[g] {
				if i < n && w < 0 {
					fmt.Fprintf(&buf, "  %q -> %q [style=dashed arrowhead=odot label=\"%s >= %d\"];\n",
						labels[i], node, escapeLabel(g), -w)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the machine config to JSON.
func (v *DefaultVisualizer) ExportJSON(config primitives.MachineConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

// ExportYAML serializes the machine config to YAML.
func (v *DefaultVisualizer) ExportYAML(config primitives.MachineConfig) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// escapeLabel quotes backslashes and double quotes for a DOT string.
func escapeLabel(s string) string {
	return labelEscaper.Replace(s)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func transitionNode(name string) string {
	return "t:" + name
}
