// Package render implements the board's informational text rendering:
// row-major cells framed by a sentinel border, piece glyphs taking
// precedence over square characters, and a hole sentinel for missing
// cells. Grounded on the original editor's render_simple, expanded
// with the bordered framing spec.md §6 calls for.
package render

import (
	"strings"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/piece"
)

// BorderChar frames every row and forms the top/bottom border lines.
const BorderChar = '%'

// HoleChar marks a missing cell, matching board.StateID's own hole
// sentinel.
const HoleChar = '#'

// Render renders b row-major, framed by BorderChar: a piece's glyph
// takes precedence over its square's character, and a hole renders as
// HoleChar.
func Render(b *board.Board) string {
	var sb strings.Builder

	border := strings.Repeat(string(BorderChar), b.W+2)
	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := 0; y < b.H; y++ {
		sb.WriteRune(BorderChar)
		for x := 0; x < b.W; x++ {
			sb.WriteRune(cellGlyph(b, x, y))
		}
		sb.WriteRune(BorderChar)
		sb.WriteByte('\n')
	}

	sb.WriteString(border)
	return sb.String()
}

func cellGlyph(b *board.Board, x, y int) rune {
	if p := b.Piece(x, y); p != nil {
		return p.Glyph()
	}
	if sq := b.Square(x, y); sq != nil {
		return rune(sq.Char())
	}
	return HoleChar
}

// TeamGlyphColor maps each team to the ANSI SGR escape that colors its
// pieces, for the CLI's optional --color flag.
var TeamGlyphColor = map[piece.Team]string{
	0: "\x1b[31m", // red
	1: "\x1b[34m", // blue
	2: "\x1b[32m", // green
	3: "\x1b[33m", // yellow
	4: "\x1b[35m", // magenta
}

// ColorReset ends a TeamGlyphColor escape.
const ColorReset = "\x1b[0m"

// RenderColor is Render with each piece glyph wrapped in its team's
// TeamGlyphColor escape; squares and holes are left uncolored.
func RenderColor(b *board.Board) string {
	var sb strings.Builder

	border := strings.Repeat(string(BorderChar), b.W+2)
	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := 0; y < b.H; y++ {
		sb.WriteRune(BorderChar)
		for x := 0; x < b.W; x++ {
			if p := b.Piece(x, y); p != nil {
				if color, ok := TeamGlyphColor[p.Team]; ok {
					sb.WriteString(color)
					sb.WriteRune(p.Glyph())
					sb.WriteString(ColorReset)
					continue
				}
			}
			sb.WriteRune(cellGlyph(b, x, y))
		}
		sb.WriteRune(BorderChar)
		sb.WriteByte('\n')
	}

	sb.WriteString(border)
	return sb.String()
}
