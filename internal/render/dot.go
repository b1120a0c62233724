// Package render draws computation graphs in Graphviz DOT form.
//
// Each graph node becomes a record showing its label (or value) and its
// accumulated gradient; each producing operation becomes a circle node
// carrying the operation's display symbol, with edges from the operands
// through the operation to the result. The emitted text is plain DOT,
// ready for `dot -Tsvg` or any other Graphviz renderer.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emicklei/dot"

	"github.com/slope-ml/slope/internal/grad"
)

// Fill colors, matching the record/circle theme the graphs are usually
// rendered with.
const (
	valueColor = "#8ecae6"
	opColor    = "#ffb703"
	edgeColor  = "#219ebc"
	leafColor  = "#d9ed92"
)

// recordEscaper escapes the characters that delimit fields and ports
// inside a DOT record label, so user-supplied label text cannot break
// the record structure.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"|", `\|`,
	"{", `\{`,
	"}", `\}`,
	"<", `\<`,
	">", `\>`,
)

// recordLabel builds the two-field record label for a node: the node's
// label (or its value) and its gradient. The record ports and field
// separator must survive quoting verbatim, so the label is emitted as a
// pre-quoted literal.
func recordLabel(v *grad.Value) dot.Literal {
	text := fmt.Sprintf("<v> value=%.4g|<g> grad=%.4g", v.Float(), v.Grad())
	if label := v.Label(); label != "" {
		text = fmt.Sprintf("<v> %s|<g> grad=%.4g", recordEscaper.Replace(label), v.Grad())
	}
	return dot.Literal(`"` + text + `"`)
}

// DOT writes the computation graph rooted at root to w as a Graphviz
// digraph. Every reachable node is emitted exactly once; shared
// subgraphs stay shared in the drawing.
func DOT(w io.Writer, root *grad.Value) error {
	g := dot.NewGraph(dot.Directed)
	g.Attr("bgcolor", "white")
	g.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "record").
			Attr("style", "filled").
			Attr("fontname", "Helvetica").
			Attr("fontsize", "12")
	})

	nodes := make(map[*grad.Value]dot.Node)
	grad.Walk(root, func(v *grad.Value) {
		id := len(nodes)
		fill := valueColor
		if v.IsLeaf() {
			fill = leafColor
		}
		n := g.Node(fmt.Sprintf("n%d", id)).
			Attr("label", recordLabel(v)).
			Attr("fillcolor", fill)
		nodes[v] = n

		if v.IsLeaf() {
			return
		}
		// Operation circle between the operands and the result.
		circle := g.Node(fmt.Sprintf("op%d", id)).
			Attr("label", v.Op().String()).
			Attr("shape", "circle").
			Attr("fillcolor", opColor).
			Attr("fontsize", "16")
		g.Edge(circle, n).Attr("color", opColor).Attr("penwidth", "2")
		for _, operand := range v.Operands() {
			// Walk visits operands before consumers, so the node exists.
			g.Edge(nodes[operand], circle).Attr("color", edgeColor).Attr("penwidth", "2")
		}
	})

	_, err := io.WriteString(w, g.String())
	return err
}

// Save renders the graph rooted at root and writes it to path. A
// ".dot" extension is appended when path has no extension.
func Save(root *grad.Value, path string) error {
	if filepath.Ext(path) == "" {
		path += ".dot"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := DOT(f, root); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	return f.Close()
}
