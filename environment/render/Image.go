package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
)

// DefaultCellSize is the side length of a rendered cell in pixels
const DefaultCellSize int = 64

// Image renders each frame of a gridworld to a numbered PNG file in a
// directory
type Image struct {
	dir      string
	cellSize int
	frame    int
}

// NewImage returns a new Image renderer saving frames to dir, which is
// created if it does not exist
func NewImage(dir string, cellSize int) (*Image, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("newImage: could not create directory: %v",
			err)
	}
	return &Image{dir: dir, cellSize: cellSize}, nil
}

// Render draws the grid with the agent at state and saves the frame
func (im *Image) Render(g *gridworld.Grid, state int) error {
	filename := filepath.Join(im.dir, fmt.Sprintf("frame_%05d.png", im.frame))
	if err := gg.SavePNG(filename, im.Draw(g, state)); err != nil {
		return fmt.Errorf("render: could not save frame: %v", err)
	}
	im.frame++
	return nil
}

// Frames returns the number of frames saved so far
func (im *Image) Frames() int {
	return im.frame
}

// Draw returns the image of the grid with the agent at state
func (im *Image) Draw(g *gridworld.Grid, state int) image.Image {
	r, c := g.Dims()
	size := float64(im.cellSize)
	dc := gg.NewContext(c*im.cellSize, r*im.cellSize)

	for s := 0; s < g.NumStates(); s++ {
		pos := g.PositionOf(s)
		x, y := float64(pos.Col)*size, float64(pos.Row)*size

		dc.DrawRectangle(x, y, size, size)
		dc.SetHexColor(cellColour(g.Cell(s)))
		dc.FillPreserve()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	// Agent
	pos := g.PositionOf(state)
	dc.DrawCircle(float64(pos.Col)*size+size/2, float64(pos.Row)*size+size/2,
		size/4)
	dc.SetHexColor("#e4572e")
	dc.Fill()

	return dc.Image()
}

func cellColour(c gridworld.Cell) string {
	switch c {
	case gridworld.Hole:
		return "#1b263b"
	case gridworld.Goal:
		return "#2a9d8f"
	case gridworld.Coin:
		return "#e9c46a"
	case gridworld.Start:
		return "#caf0f8"
	}
	return "#edf6f9"
}
