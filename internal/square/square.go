// Package square implements the per-cell square decoration: Normal,
// Enter, Exit, and the four bouncer kinds, plus the direction reflection
// table bouncers use.
package square

import "github.com/chessadvent/chessadvent/internal/geometry"

// Kind identifies which variant a Square is.
type Kind int

const (
	Normal Kind = iota
	Enter
	Exit
	BounceBackslash // \
	BounceSlash     // /
	BounceHyphen    // -
	BouncePipe      // |
)

// Square is a tagged value describing a board cell's decoration.
// Normal is the only non-solid kind.
type Square struct {
	Kind Kind
}

// kindChars maps each Kind to its document/render character.
var kindChars = map[Kind]byte{
	Normal:          '.',
	Enter:           'E',
	Exit:            'X',
	BounceBackslash: '\\',
	BounceSlash:     '/',
	BounceHyphen:    '-',
	BouncePipe:      '|',
}

var charKinds = func() map[byte]Kind {
	m := make(map[byte]Kind, len(kindChars))
	for k, c := range kindChars {
		m[c] = k
	}
	return m
}()

// Char returns the document/render character for this square's kind.
func (s Square) Char() byte {
	return kindChars[s.Kind]
}

// FromChar decodes a document/render character into a Square. ok is
// false if c is not one of the seven recognized square characters.
func FromChar(c byte) (Square, bool) {
	k, ok := charKinds[c]
	if !ok {
		return Square{}, false
	}
	return Square{Kind: k}, true
}

// Solid reports whether pieces cannot sit atop this square. Normal is
// the only non-solid kind.
func (s Square) Solid() bool {
	return s.Kind != Normal
}

// isBounce reports whether k is one of the four bouncer kinds.
func isBounce(k Kind) bool {
	switch k {
	case BounceBackslash, BounceSlash, BounceHyphen, BouncePipe:
		return true
	default:
		return false
	}
}

// reflection tables: incoming direction -> outgoing direction. Approach
// directions absent from a bouncer's table are physically inconsistent
// with its shape and yield "no bounce".
var reflections = map[Kind]map[geometry.Direction]geometry.Direction{
	BounceBackslash: {
		geometry.N:  geometry.W,
		geometry.W:  geometry.N,
		geometry.E:  geometry.S,
		geometry.S:  geometry.E,
		geometry.NE: geometry.SW,
		geometry.SW: geometry.NE,
	},
	BounceSlash: {
		geometry.N:  geometry.E,
		geometry.E:  geometry.N,
		geometry.W:  geometry.S,
		geometry.S:  geometry.W,
		geometry.NW: geometry.SE,
		geometry.SE: geometry.NW,
	},
	BounceHyphen: {
		geometry.N:  geometry.S,
		geometry.S:  geometry.N,
		geometry.NE: geometry.SE,
		geometry.SE: geometry.NE,
		geometry.NW: geometry.SW,
		geometry.SW: geometry.NW,
	},
	BouncePipe: {
		geometry.E:  geometry.W,
		geometry.W:  geometry.E,
		geometry.NE: geometry.NW,
		geometry.NW: geometry.NE,
		geometry.SE: geometry.SW,
		geometry.SW: geometry.SE,
	},
}

// BounceFor returns the outgoing direction for a ray arriving from dir,
// and true, if this square is a bouncer that reflects that approach.
// Returns (0, false) for Normal/Enter/Exit squares and for approach
// directions a bouncer doesn't reflect.
func (s Square) BounceFor(dir geometry.Direction) (geometry.Direction, bool) {
	if !isBounce(s.Kind) {
		return 0, false
	}
	out, ok := reflections[s.Kind][dir]
	return out, ok
}
