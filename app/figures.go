package app

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"depthlab/depth"
	"depthlab/internal/config"
	"depthlab/plot"
	"depthlab/raster"
	"depthlab/trigrid"
	"depthlab/zbuf"
)

const zfightFOV = math.Pi / 3

// DepthFigure plots the encode curve d(z) against -z, overlaid with the
// eye-space depth of every level a bits-deep buffer can store.
func DepthFigure(p depth.Params, bits, samples int) (plot.Figure, error) {
	levels, err := depth.Levels(bits)
	if err != nil {
		return plot.Figure{}, err
	}
	steps, err := p.DecodeAll(levels)
	if err != nil {
		return plot.Figure{}, fmt.Errorf("decode levels: %w", err)
	}

	zs := depth.Linspace(-p.Near(), -p.Far(), samples)
	ds, err := p.EncodeAll(zs)
	if err != nil {
		return plot.Figure{}, fmt.Errorf("encode sweep: %w", err)
	}

	f := plot.Figure{
		Title:  fmt.Sprintf("reversed-Z  near=%g far=%g", p.Near(), p.Far()),
		XLabel: "-z",
		YLabel: "d",
		Series: []plot.Series{
			{
				Label: fmt.Sprintf("%d-bit levels", bits),
				Xs:    negate(steps),
				Ys:    levels,
				Style: plot.StyleScatter,
				Color: raster.Red,
			},
			{
				Label: "d(z)",
				Xs:    negate(zs),
				Ys:    ds,
				Style: plot.StyleLine,
				Color: raster.Blue,
			},
		},
	}
	f.AutoRange()
	return f, nil
}

// TriangleScene builds the inspector grid and triangles from cfg. A zero
// grid Max fits the grid to the triangles.
func TriangleScene(cfg config.Config) (trigrid.Grid, []trigrid.Triangle, error) {
	tris := make([]trigrid.Triangle, len(cfg.Triangles))
	for i, t := range cfg.Triangles {
		for j, v := range t {
			tris[i][j] = raster.Pt(v[0], v[1])
		}
	}

	gc := cfg.Grid
	if gc.Max == [2]int{} {
		g, err := trigrid.Fit(gc.Margin, gc.Cell, tris...)
		return g, tris, err
	}
	g, err := trigrid.NewGrid(image.Pt(gc.Min[0], gc.Min[1]), image.Pt(gc.Max[0], gc.Max[1]), gc.Margin, gc.Cell)
	return g, tris, err
}

// ZFightScene is a flat red wall crossed by a slightly tilted blue wall,
// placed 60% of the way from the near to the far plane. With too few depth
// bits the crossing line breaks up into bands.
func ZFightScene(p depth.Params) []zbuf.Triangle {
	d := p.Near() + 0.6*(p.Far()-p.Near())
	s := 0.45 * d
	const tilt = 0.02
	flat := func(x, y float64) zbuf.Vec3 { return zbuf.V3(x, y, -d) }
	tilted := func(x, y float64) zbuf.Vec3 { return zbuf.V3(x, y, -d+tilt*x) }

	quad := func(at func(x, y float64) zbuf.Vec3, c color.RGBA) []zbuf.Triangle {
		a, b, cc, dd := at(-s, -s), at(s, -s), at(s, s), at(-s, s)
		return []zbuf.Triangle{
			{V: [3]zbuf.Vec3{a, b, cc}, Color: c},
			{V: [3]zbuf.Vec3{a, cc, dd}, Color: c},
		}
	}
	return append(quad(flat, raster.Red), quad(tilted, raster.Blue)...)
}

// DrawZFight renders ZFightScene through a bits-deep depth buffer and
// returns the number of triangles drawn.
func DrawZFight(c *raster.Canvas, p depth.Params, bits int) (int, error) {
	buf, err := zbuf.NewBuffer(c.Width(), c.Height(), bits)
	if err != nil {
		return 0, err
	}
	r := &zbuf.Renderer{Params: p, FOVYRad: zfightFOV, Depth: buf}
	c.Clear(raster.Gray)
	n, err := r.Draw(c, ZFightScene(p)...)
	if err != nil {
		return n, err
	}
	c.Text(6, 4+raster.LineHeight(), fmt.Sprintf("%d-bit depth  near=%g far=%g", bits, p.Near(), p.Far()), raster.White)
	return n, nil
}

// FrameSize returns the framebuffer size the configured figure needs.
func FrameSize(cfg config.Config) (w, h int, err error) {
	if cfg.Mode == config.ModeShowTri {
		g, _, err := TriangleScene(cfg)
		if err != nil {
			return 0, 0, err
		}
		w, h = g.Size()
		if w > raster.MaxDim || h > raster.MaxDim {
			return 0, 0, fmt.Errorf("%w: grid needs %dx%d pixels, limit %d", config.ErrInvalid, w, h, raster.MaxDim)
		}
		return w, h, nil
	}
	return cfg.Width, cfg.Height, nil
}

// Draw renders the configured figure onto c.
func Draw(c *raster.Canvas, cfg config.Config) error {
	switch cfg.Mode {
	case config.ModeShowTri:
		g, tris, err := TriangleScene(cfg)
		if err != nil {
			return err
		}
		trigrid.Render(c, g, tris...)
		return nil
	case config.ModeZFight:
		p, err := depth.NewParams(cfg.Near, cfg.Far)
		if err != nil {
			return err
		}
		_, err = DrawZFight(c, p, cfg.Bits)
		return err
	default:
		p, err := depth.NewParams(cfg.Near, cfg.Far)
		if err != nil {
			return err
		}
		f, err := DepthFigure(p, cfg.Bits, cfg.Samples)
		if err != nil {
			return err
		}
		return f.Render(c)
	}
}

func negate(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = -v
	}
	return out
}
