/*
 * render.go, part of devsnap.
 *
 * Copyright 2024 The devsnap Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/devsnap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Options controls the size and look of the device images.
type Options struct {
	Width, Height vg.Length
	DPI           int
	MarkerRadius  vg.Length
	Species       Species
}

//DefaultOptions returns a 5x7 inches, 100 DPI figure with small markers.
func DefaultOptions() *Options {
	return &Options{
		Width:        5 * vg.Inch,
		Height:       7 * vg.Inch,
		DPI:          100,
		MarkerRadius: vg.Points(0.4),
		Species:      DefaultSpecies(),
	}
}

//devicePlot builds the scatter plot of the atoms in S, each colored according to its role.
//Atoms with a NaN or infinite coordinate are left out of the plot, but still count
//for the role classification.
func devicePlot(S *devsnap.Snapshot, o *Options) (*plot.Plot, error) {
	colors := Colors(S, o.Species)
	pts := make(plotter.XYs, 0, S.Len())
	ptcolors := make([]color.NRGBA, 0, S.Len())
	for i, v := range S.Positions {
		if !finite(v.X) || !finite(v.Y) {
			continue
		}
		pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
		ptcolors = append(ptcolors, colors[i])
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no atom with finite coordinates")
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: ptcolors[i], Radius: o.MarkerRadius, Shape: draw.CircleGlyph{}}
	}
	p := plot.New()
	//No grid is added, and the x axis carries no ticks.
	p.X.Tick.Marker = plot.ConstantTicks{}
	p.Add(s)
	return p, nil
}

//Figure draws S in a new canvas and returns it. The canvas is divided in stacked
//panel slots, 4 if S has power values and 3 otherwise, and only the first one is used.
func Figure(S *devsnap.Snapshot, o *Options) (*vgimg.Canvas, error) {
	if S == nil {
		return nil, fmt.Errorf("render: given nil snapshot")
	}
	if S.Empty() {
		return nil, fmt.Errorf("render: nothing to draw in empty snapshot %s", S.Name)
	}
	if o == nil {
		o = DefaultOptions()
	}
	p, err := devicePlot(S, o)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", S.Name, err)
	}
	img := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
	dc := draw.New(img)
	pad := vg.Millimeter * 2
	t := draw.Tiles{
		Rows:      panelCount(S.HasPower()),
		Cols:      1,
		PadX:      pad,
		PadY:      pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	p.Draw(t.At(dc, 0, 0))
	return img, nil
}

//writerFor returns a writer for img in the raster format given by the extension of name.
func writerFor(img *vgimg.Canvas, name string) (io.WriterTo, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: img}, nil
	case ".png":
		return vgimg.PngCanvas{Canvas: img}, nil
	case ".tif", ".tiff":
		return vgimg.TiffCanvas{Canvas: img}, nil
	}
	return nil, fmt.Errorf("render: unsupported image format for %s", name)
}

//Save writes img to the file fname, in the format given by its extension.
//The directory must exist. A partially written file is not removed on failure.
func Save(img *vgimg.Canvas, fname string) error {
	w, err := writerFor(img, fname)
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//Render draws S and saves the image as outname in the outdir directory.
//If o is nil, DefaultOptions is used.
func Render(S *devsnap.Snapshot, outdir, outname string, o *Options) error {
	img, err := Figure(S, o)
	if err != nil {
		return err
	}
	return Save(img, filepath.Join(outdir, outname))
}
