// Copyright 2026 Slope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package render draws computation graphs in Graphviz DOT form.
//
// Example:
//
//	x := grad.NewLabeled(2.0, "x")
//	z := x.Mul(x)
//	z.Backward()
//	render.Save(z, "square") // writes square.dot
package render

import (
	"io"

	"github.com/slope-ml/slope/grad"
	"github.com/slope-ml/slope/internal/render"
)

// DOT writes the computation graph rooted at root to w as a Graphviz
// digraph.
func DOT(w io.Writer, root *grad.Value) error {
	return render.DOT(w, root)
}

// Save writes the graph rooted at root to a .dot file at path.
func Save(root *grad.Value, path string) error {
	return render.Save(root, path)
}
