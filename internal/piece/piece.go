// Package piece implements the piece model: kind, team, and the pawn's
// facing/long-range attributes, plus the glyph codec used at the
// serialization boundary.
package piece

import "github.com/chessadvent/chessadvent/internal/geometry"

// NumTeams is the fixed number of teams. The reference implementation
// uses five (one player team plus four opponent teams); treated here as a
// compile-time constant per spec.md.
const NumTeams = 5

// Team identifies which side a piece belongs to, in 0..NumTeams-1.
type Team int

// Kind is the piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

var kindChars = map[Kind]byte{
	King:   'K',
	Queen:  'Q',
	Bishop: 'B',
	Knight: 'N',
	Rook:   'R',
}

// Char returns the single-character glyph for non-pawn kinds. For Pawn,
// use Piece.Glyph instead since a pawn's glyph also encodes facing and
// range.
func (k Kind) Char() byte {
	if c, ok := kindChars[k]; ok {
		return c
	}
	return '?'
}

// Facing is a pawn's cardinal forward direction, independent of team.
type Facing int

const (
	Up Facing = iota
	Down
	Left
	Right

	numFacings = int(iota)
)

// facingToDirection maps a Facing to its cardinal geometry.Direction.
var facingToDirection = [numFacings]geometry.Direction{
	Up:    geometry.N,
	Down:  geometry.S,
	Left:  geometry.W,
	Right: geometry.E,
}

// Direction returns the cardinal geometry.Direction this facing moves
// toward.
func (f Facing) Direction() geometry.Direction {
	return facingToDirection[f]
}

// FacingFromDirection returns the Facing matching a cardinal direction,
// and false if dir is not one of N/S/W/E.
func FacingFromDirection(dir geometry.Direction) (Facing, bool) {
	switch dir {
	case geometry.N:
		return Up, true
	case geometry.S:
		return Down, true
	case geometry.W:
		return Left, true
	case geometry.E:
		return Right, true
	default:
		return 0, false
	}
}

// Piece is a tagged value identifying a piece's kind, team, and (for
// pawns only) facing and long-range capability. Non-pawn pieces carry no
// facing; Facing/LongRange are meaningless for them.
type Piece struct {
	Kind      Kind
	Team      Team
	Facing    Facing // only meaningful when Kind == Pawn
	LongRange bool   // only meaningful when Kind == Pawn
}

// New constructs a non-pawn piece.
func New(kind Kind, team Team) Piece {
	return Piece{Kind: kind, Team: team}
}

// NewPawn constructs a pawn facing the given direction, with the given
// advance range.
func NewPawn(team Team, facing Facing, longRange bool) Piece {
	return Piece{Kind: Pawn, Team: team, Facing: facing, LongRange: longRange}
}

// pawnGlyphs is indexed [longRange][facing]; order matches spec.md's
// document format: up, down, left, right for each range.
var pawnGlyphs = [2][4]rune{
	{'↑', '↓', '←', '→'},
	{'↟', '↡', '↞', '↠'},
}

// Glyph returns the single rune identifying this piece for rendering and
// serialization: the kind character for non-pawns, or the arrow glyph
// encoding (facing, long_range) for pawns.
func (p Piece) Glyph() rune {
	if p.Kind != Pawn {
		return rune(p.Kind.Char())
	}
	idx := 0
	if p.LongRange {
		idx = 1
	}
	return pawnGlyphs[idx][p.Facing]
}

// glyphToPawn inverts pawnGlyphs for the document decoder.
var glyphToPawn = func() map[rune]Piece {
	m := make(map[rune]Piece, 8)
	for longIdx, row := range pawnGlyphs {
		for facingIdx, g := range row {
			m[g] = Piece{Kind: Pawn, Facing: Facing(facingIdx), LongRange: longIdx == 1}
		}
	}
	return m
}()

// charToKind inverts kindChars for the document decoder.
var charToKind = map[byte]Kind{
	'K': King,
	'Q': Queen,
	'B': Bishop,
	'N': Knight,
	'R': Rook,
}

// FromGlyph decodes a document/render glyph plus team into a Piece. ok is
// false if the glyph is not one of K,Q,B,N,R or the eight pawn arrows.
func FromGlyph(glyph rune, team Team) (Piece, bool) {
	if pawnTemplate, ok := glyphToPawn[glyph]; ok {
		pawnTemplate.Team = team
		return pawnTemplate, true
	}
	if k, ok := charToKind[byte(glyph)]; ok {
		return Piece{Kind: k, Team: team}, true
	}
	return Piece{}, false
}
