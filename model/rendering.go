package model

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

const (
	cellAlive = 'O'
	cellDead  = ' '

	ansiClearScreen = "\x1b[2J\x1b[1;1H"
)

var (
	colorAlive = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorDead  = color.RGBA{A: 255}
)

// RenderText draws the board one glyph per cell, one line per row
func RenderText(b *Board) string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for _, row := range b.cells {
		for _, v := range row {
			if v == Alive {
				sb.WriteByte(cellAlive)
			} else {
				sb.WriteByte(cellDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderFrame draws the board as an image with one pixel per cell.
// Pixel (x, y) is cell (row y, column x).
func RenderFrame(b *Board) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.columns, b.rows))
	for y := range b.rows {
		for x := range b.columns {
			if b.cells[y][x] == Alive {
				img.SetRGBA(x, y, colorAlive)
			} else {
				img.SetRGBA(x, y, colorDead)
			}
		}
	}
	return img
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	if _, err := io.WriteString(r.Out, RenderText(b)); err != nil {
		fmt.Println("Error drawing board:", err)
	}
}

// Clear clears the terminal screen and moves the cursor home
func (r *TerminalRenderer) Clear() {
	if _, err := io.WriteString(r.Out, ansiClearScreen); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
