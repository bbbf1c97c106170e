// Package document implements the board file codec: a plain-data JSON
// object with a null-vs-one/two-element-array discipline, matching
// spec.md's board file schema exactly so load(dump(b)) round-trips.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/chesserr"
	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/square"
)

// Document is the wire shape: W and H plus row-major Squares and
// Pieces sequences, each length W*H. A nil element in Squares is a
// hole; a nil element in Pieces is an empty cell.
type Document struct {
	W       int              `json:"w"`
	H       int              `json:"h"`
	Squares []*SquareEntry   `json:"squares"`
	Pieces  []*PieceEntry    `json:"pieces"`
}

// SquareEntry is a one-element array `[char]` in the document's JSON
// rendering; MarshalJSON/UnmarshalJSON implement that shape.
type SquareEntry struct {
	Char byte
}

func (s SquareEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([1]string{string(rune(s.Char))})
}

func (s *SquareEntry) UnmarshalJSON(data []byte) error {
	var arr [1]string
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("document: decoding square entry: %w: %v", chesserr.InvalidDocument, err)
	}
	if len(arr[0]) != 1 {
		return fmt.Errorf("document: square char must be one byte, got %q: %w", arr[0], chesserr.InvalidDocument)
	}
	s.Char = arr[0][0]
	return nil
}

// PieceEntry is a two-element array `[char, team]` in the document's
// JSON rendering.
type PieceEntry struct {
	Glyph rune
	Team  piece.Team
}

func (p PieceEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{string(p.Glyph), int(p.Team)})
}

func (p *PieceEntry) UnmarshalJSON(data []byte) error {
	var arr [2]json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("document: decoding piece entry: %w: %v", chesserr.InvalidDocument, err)
	}
	var glyph string
	if err := json.Unmarshal(arr[0], &glyph); err != nil {
		return fmt.Errorf("document: piece glyph must be a string: %w", chesserr.InvalidDocument)
	}
	runes := []rune(glyph)
	if len(runes) != 1 {
		return fmt.Errorf("document: piece glyph must be one character, got %q: %w", glyph, chesserr.InvalidDocument)
	}
	var team int
	if err := json.Unmarshal(arr[1], &team); err != nil {
		return fmt.Errorf("document: piece team must be an integer: %w", chesserr.InvalidDocument)
	}
	p.Glyph = runes[0]
	p.Team = piece.Team(team)
	return nil
}

// Dump serializes b into its document form.
func Dump(b *board.Board) *Document {
	size := b.Size()
	doc := &Document{
		W:       b.W,
		H:       b.H,
		Squares: make([]*SquareEntry, size),
		Pieces:  make([]*PieceEntry, size),
	}

	i := 0
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if sq := b.Square(x, y); sq != nil {
				doc.Squares[i] = &SquareEntry{Char: sq.Char()}
			}
			if p := b.Piece(x, y); p != nil {
				doc.Pieces[i] = &PieceEntry{Glyph: p.Glyph(), Team: p.Team}
			}
			i++
		}
	}
	return doc
}

// Load decodes doc into a Board, returning chesserr.InvalidDocument if
// any field violates the schema (wrong length, unknown square
// character, or unrecognized piece glyph).
func Load(doc *Document) (*board.Board, error) {
	if doc.W <= 0 || doc.H <= 0 {
		return nil, fmt.Errorf("document: w and h must be positive, got %dx%d: %w", doc.W, doc.H, chesserr.InvalidDocument)
	}
	size := doc.W * doc.H
	if len(doc.Squares) != size {
		return nil, fmt.Errorf("document: squares has length %d, want %d: %w", len(doc.Squares), size, chesserr.InvalidDocument)
	}
	if len(doc.Pieces) != size {
		return nil, fmt.Errorf("document: pieces has length %d, want %d: %w", len(doc.Pieces), size, chesserr.InvalidDocument)
	}

	b := board.New(doc.W, doc.H)

	i := 0
	for y := 0; y < doc.H; y++ {
		for x := 0; x < doc.W; x++ {
			entry := doc.Squares[i]
			if entry == nil {
				if err := b.SetSquare(x, y, nil); err != nil {
					return nil, err
				}
			} else {
				sq, ok := square.FromChar(entry.Char)
				if !ok {
					return nil, fmt.Errorf("document: unknown square character %q at (%d,%d): %w", entry.Char, x, y, chesserr.InvalidDocument)
				}
				if err := b.SetSquare(x, y, &sq); err != nil {
					return nil, err
				}
			}

			if pe := doc.Pieces[i]; pe != nil {
				p, ok := piece.FromGlyph(pe.Glyph, pe.Team)
				if !ok {
					return nil, fmt.Errorf("document: unknown piece glyph %q at (%d,%d): %w", pe.Glyph, x, y, chesserr.InvalidDocument)
				}
				if err := b.SetPiece(x, y, &p); err != nil {
					return nil, err
				}
			}

			i++
		}
	}

	return b, nil
}

// Marshal dumps b directly to its JSON document bytes.
func Marshal(b *board.Board) ([]byte, error) {
	return json.Marshal(Dump(b))
}

// Unmarshal decodes JSON document bytes into a Board.
func Unmarshal(data []byte) (*board.Board, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: %w: %v", chesserr.InvalidDocument, err)
	}
	return Load(&doc)
}
