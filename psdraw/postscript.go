package psdraw

import (
	"fmt"
	"io"
	"math"
)

// Writer emits the PostScript primitives used to render a 1-D graph
// layout: node(), edge() for a direct line, and edgeArc() for a
// semicircular detour above or below the baseline.
type Writer struct {
	w      io.Writer
	origin float64
	scale  float64
	page   int
}

// NewWriter writes the EPSF header and primitive definitions for a
// drawing of the given node count, sized wx by wy PostScript points.
func NewWriter(w io.Writer, nodes int, wx, wy float64) *Writer {
	fmt.Fprintf(w, "%%!PS-Adobe-3.0 EPSF-2.0\n")
	fmt.Fprintf(w, "%%%%BoundingBox: 0 0 %g %g\n", wx, wy)
	fmt.Fprintf(w, "100 dict begin\n")
	fmt.Fprintf(w, "/c { newpath 0 360 arc stroke } bind def\n")
	fmt.Fprintf(w, "/d { newpath 0 360 arc fill } bind def\n")
	fmt.Fprintf(w, "/n { 0.125 setlinewidth setgray 0 exch 3 copy d 0 setgray c } bind def\n")
	fmt.Fprintf(w, "/a { newpath setlinewidth exch 0 moveto 0 lineto stroke } bind def\n")
	fmt.Fprintf(w, "/A { newpath setlinewidth 7 -2 roll moveto arct stroke } bind def\n")

	nv := nodes
	if nv <= 0 {
		nv = 1
	}
	return &Writer{w: w, origin: 0.5 * wy, scale: wx / float64(nv), page: 1}
}

// Close writes the document trailer.
func (w *Writer) Close() error {
	_, err := fmt.Fprintf(w.w, "end\n%%%%EOF\n")
	return err
}

// Begin opens a new page at the drawing's origin and scale.
func (w *Writer) Begin() {
	fmt.Fprintf(w.w, "%%%%Page: %d\n", w.page)
	fmt.Fprintf(w.w, "gsave\n")
	fmt.Fprintf(w.w, "0 %g translate\n", w.origin)
	fmt.Fprintf(w.w, "%g dup scale\n", w.scale)
	fmt.Fprintf(w.w, "2 setlinejoin\n")
}

// End closes the current page.
func (w *Writer) End() {
	fmt.Fprintf(w.w, "grestore\n")
	fmt.Fprintf(w.w, "showpage\n")
	w.page++
}

// Node draws a filled circle of radius r at position x, shaded by gray
// (0 = black, 1 = white).
func (w *Writer) Node(x, r, gray float64) {
	fmt.Fprintf(w.w, "%g %g %g n\n", x, r, gray)
}

// Edge draws a straight line from xi to xj with thickness proportional
// to weight.
func (w *Writer) Edge(xi, xj, weight float64) {
	fmt.Fprintf(w.w, "%g %g %g a\n", xi, xj, weight/4)
}

// EdgeArc draws a semicircular detour between xi and xj, above the
// baseline if top is true and below otherwise, with thickness
// proportional to weight.
func (w *Writer) EdgeArc(xi, xj, weight float64, top bool) {
	x := (xi + xj) / 2
	d := (xj - xi) / 2
	if d < 0 {
		d = -d
	}
	h := d * d * (2*d - 1)
	if h > 1e5 {
		h = 1e5
	}
	var y float64
	if h != 0 {
		y = d * d / h
	}
	r := math.Hypot(d, y)

	weight /= 4
	if top {
		fmt.Fprintf(w.w, "%g 0 %g %g %g 0 %g %g A\n", xj, x, h, xi, r, weight)
	} else {
		fmt.Fprintf(w.w, "%g 0 %g %g %g 0 %g %g A\n", xi, x, -h, xj, r, weight)
	}
}
