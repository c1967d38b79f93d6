package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/Phlosioneer/polyomino-generator/board"
)

// palette cycles across piece indices; neighbors in placement order get
// clearly distinct colors.
var palette = []color.RGBA{
	{0xE6, 0x4B, 0x35, 0xFF},
	{0x4D, 0xBB, 0xD5, 0xFF},
	{0x00, 0xA0, 0x87, 0xFF},
	{0x3C, 0x54, 0x88, 0xFF},
	{0xF3, 0x9B, 0x7F, 0xFF},
	{0x84, 0x91, 0xB4, 0xFF},
	{0x91, 0xD1, 0xC2, 0xFF},
	{0xDC, 0x91, 0x61, 0xFF},
	{0x7E, 0x61, 0x48, 0xFF},
	{0xB0, 0x9C, 0x85, 0xFF},
}

// renderBoard draws one pixel per cell and upscales without smoothing so
// every cell stays a crisp square block.
func renderBoard(b *board.Board, cellSize int) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			index, _ := b.Get(x, y)
			if index == board.Empty {
				small.SetRGBA(x, y, color.RGBA{A: 0xFF})
				continue
			}
			small.SetRGBA(x, y, palette[index%len(palette)])
		}
	}

	big := image.NewRGBA(image.Rect(0, 0, b.Width()*cellSize, b.Height()*cellSize))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return big
}

// writeBoardPNG renders the board to a PNG file.
func writeBoardPNG(path string, b *board.Board, cellSize int) error {
	if cellSize < 1 {
		return fmt.Errorf("cell size %d is not positive", cellSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, renderBoard(b, cellSize)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
