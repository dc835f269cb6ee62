package community

import (
	"bytes"
	"fmt"
	"strings"
)

// DisplayText lists every city with its charging state, one per line.
//
//	Cities of the urban community:
//	A : has a charging point
//	B : has no charging point
func (uc *UrbanCommunity) DisplayText() string {
	var b strings.Builder
	b.WriteString("Cities of the urban community:\n")
	for _, c := range uc.cities {
		b.WriteString(c.name)
		if c.chargingPoint {
			b.WriteString(" : has a charging point\n")
		} else {
			b.WriteString(" : has no charging point\n")
		}
	}
	return b.String()
}

// String implements fmt.Stringer with DisplayText.
func (uc *UrbanCommunity) String() string { return uc.DisplayText() }

// ToDOT describes the community as an undirected Graphviz graph. Cities with
// a charging point are filled green with a bold outline; cities left without
// access are outlined red.
func (uc *UrbanCommunity) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("graph community {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	stranded := make(map[string]bool)
	for _, name := range uc.Undominated() {
		stranded[name] = true
	}

	for _, c := range uc.cities {
		switch {
		case c.chargingPoint:
			fmt.Fprintf(&buf, "  %q [fillcolor=palegreen, penwidth=2];\n", c.name)
		case stranded[c.name]:
			fmt.Fprintf(&buf, "  %q [color=red, fontcolor=red];\n", c.name)
		default:
			fmt.Fprintf(&buf, "  %q;\n", c.name)
		}
	}

	buf.WriteString("\n")
	for _, r := range uc.Roads() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", r.From, r.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}
