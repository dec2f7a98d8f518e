// Package render draws the road network, and a route over it, as SVG.
//
// All drawing goes through an explicit Context holding the output
// writer and the fitted coordinate transform — there is no shared
// canvas or package-level state, so contexts are independent and a
// test can render into a plain bytes.Buffer. Acquire with NewContext,
// draw the base map, overlay routes, then Close to finish the surface:
//
//	ctx, _ := render.NewContext(w, 800, 600)
//	ctx.DrawNetwork(reg, g)
//	ctx.DrawRoute(reg, path)
//	ctx.Close()
package render

import (
	"errors"
	"fmt"
	"io"

	"roadnav/core"
	"roadnav/graph"
)

// Sentinel errors for drawing-surface misuse.
var (
	// ErrClosed indicates drawing on a Context after Close.
	ErrClosed = errors.New("render: context is closed")
	// ErrNotFitted indicates DrawRoute before DrawNetwork set the transform.
	ErrNotFitted = errors.New("render: draw the network before overlaying a route")
	// ErrNoNodes indicates an attempt to render an empty registry.
	ErrNoNodes = errors.New("render: nothing to draw")
)

// Context is one SVG drawing surface plus the coordinate transform
// fitted to the node set it drew.
type Context struct {
	w             io.Writer
	width, height float64
	pad           float64

	// transform, set by DrawNetwork
	minX, minY float64
	scale      float64
	fitted     bool

	closed bool
}

// NewContext acquires a drawing surface of width×height pixels on w
// and emits the SVG preamble.
func NewContext(w io.Writer, width, height int) (*Context, error) {
	c := &Context{w: w, width: float64(width), height: float64(height), pad: 24}
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	if err != nil {
		return nil, fmt.Errorf("render: open surface: %w", err)
	}

	return c, nil
}

// Close finishes the surface. Further drawing fails with ErrClosed.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if _, err := io.WriteString(c.w, "</svg>\n"); err != nil {
		return fmt.Errorf("render: close surface: %w", err)
	}

	return nil
}

// DrawNetwork fits the transform to every registered node and draws
// the base map: one line per undirected edge of g, one dot and label
// per node.
func (c *Context) DrawNetwork(reg *core.Registry, g *graph.Graph) error {
	if c.closed {
		return ErrClosed
	}
	nodes := reg.All()
	if len(nodes) == 0 {
		return ErrNoNodes
	}
	c.fit(nodes)

	// edges first, so dots and labels sit on top; a<b draws each once
	for _, a := range g.IDs() {
		nbrs, err := g.Neighbors(a)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		for _, b := range nbrs {
			if a >= b {
				continue
			}
			ra, err := reg.Lookup(a)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			rb, err := reg.Lookup(b)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			ax, ay := c.project(ra.X, ra.Y)
			bx, by := c.project(rb.X, rb.Y)
			if _, err = fmt.Fprintf(c.w,
				"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#999\" stroke-width=\"1\"/>\n",
				ax, ay, bx, by); err != nil {
				return fmt.Errorf("render: draw edge: %w", err)
			}
		}
	}

	for _, rec := range nodes {
		x, y := c.project(rec.X, rec.Y)
		if _, err := fmt.Fprintf(c.w,
			"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"#333\"/>\n"+
				"<text x=\"%.1f\" y=\"%.1f\" font-size=\"10\" fill=\"#333\">%s</text>\n",
			x, y, x+5, y-5, rec.ID); err != nil {
			return fmt.Errorf("render: draw node: %w", err)
		}
	}

	return nil
}

// DrawRoute overlays path as a highlighted polyline with distinct
// endpoint markers, using the transform fitted by DrawNetwork.
func (c *Context) DrawRoute(reg *core.Registry, path []string) error {
	if c.closed {
		return ErrClosed
	}
	if !c.fitted {
		return ErrNotFitted
	}
	if len(path) == 0 {
		return nil
	}

	points := make([][2]float64, 0, len(path))
	for _, id := range path {
		rec, err := reg.Lookup(id)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		x, y := c.project(rec.X, rec.Y)
		points = append(points, [2]float64{x, y})
	}

	if len(points) > 1 {
		if _, err := io.WriteString(c.w, "<polyline points=\""); err != nil {
			return fmt.Errorf("render: draw route: %w", err)
		}
		for _, p := range points {
			if _, err := fmt.Fprintf(c.w, "%.1f,%.1f ", p[0], p[1]); err != nil {
				return fmt.Errorf("render: draw route: %w", err)
			}
		}
		if _, err := io.WriteString(c.w,
			"\" fill=\"none\" stroke=\"#d33\" stroke-width=\"3\"/>\n"); err != nil {
			return fmt.Errorf("render: draw route: %w", err)
		}
	}

	// endpoint markers: start green, end red
	start, end := points[0], points[len(points)-1]
	if _, err := fmt.Fprintf(c.w,
		"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"6\" fill=\"#2a2\"/>\n"+
			"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"6\" fill=\"#d33\"/>\n",
		start[0], start[1], end[0], end[1]); err != nil {
		return fmt.Errorf("render: draw marker: %w", err)
	}

	return nil
}

// fit computes the map→viewport transform over the node bounds,
// preserving aspect ratio and padding.
func (c *Context) fit(nodes []core.NodeRecord) {
	minX, minY := nodes[0].X, nodes[0].Y
	maxX, maxY := minX, minY
	for _, rec := range nodes[1:] {
		minX, maxX = min(minX, rec.X), max(maxX, rec.X)
		minY, maxY = min(minY, rec.Y), max(maxY, rec.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	c.minX, c.minY = minX, minY
	c.scale = min((c.width-2*c.pad)/dx, (c.height-2*c.pad)/dy)
	c.fitted = true
}

// project maps a node coordinate into viewport pixels. SVG y grows
// downward, map y grows upward, hence the flip.
func (c *Context) project(x, y float64) (float64, float64) {
	return c.pad + (x-c.minX)*c.scale, c.height - c.pad - (y-c.minY)*c.scale
}
