/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// CastlingRights is a 4-bit set of the castling rights still available,
// one bit per quadrant (white-kingside, white-queenside, black-kingside,
// black-queenside).
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0

	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO

	CastlingAny    CastlingRights = CastlingWhite | CastlingBlack
	CastlingLength CastlingRights = 16
)

// Has checks that every bit set in rhs is also set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

// Remove clears the given bits, returning the new value.
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs &^= rhs
	return *lhs
}

// Add sets the given bits, returning the new value.
func (lhs *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*lhs |= rhs
	return *lhs
}

// String renders as a "KQkq"-style subset, "-" if none are set.
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteOO) {
		s += "K"
	}
	if lhs.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if lhs.Has(CastlingBlackOO) {
		s += "k"
	}
	if lhs.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// Quadrant identifies one of the four castling rights as a small dense
// code (used by the packed Move's 2-bit castling-quadrant field).
type Quadrant uint8

const (
	QuadrantWK Quadrant = 0
	QuadrantWQ Quadrant = 1
	QuadrantBK Quadrant = 2
	QuadrantBQ Quadrant = 3
)

var quadrantRight = [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO}

// Right returns the single CastlingRights bit this quadrant corresponds to.
func (q Quadrant) Right() CastlingRights {
	return quadrantRight[q]
}

var quadrantKingFrom = [4]Square{SqE1, SqE1, SqE8, SqE8}
var quadrantKingTo = [4]Square{SqG1, SqC1, SqG8, SqC8}
var quadrantRookFrom = [4]Square{SqH1, SqA1, SqH8, SqA8}
var quadrantRookTo = [4]Square{SqF1, SqD1, SqF8, SqD8}
var quadrantColor = [4]Color{White, White, Black, Black}

// KingFrom returns the king's origin square for this quadrant.
func (q Quadrant) KingFrom() Square { return quadrantKingFrom[q] }

// KingTo returns the king's destination square for this quadrant.
func (q Quadrant) KingTo() Square { return quadrantKingTo[q] }

// RookFrom returns the castling rook's origin square for this quadrant.
func (q Quadrant) RookFrom() Square { return quadrantRookFrom[q] }

// RookTo returns the castling rook's destination square for this quadrant.
func (q Quadrant) RookTo() Square { return quadrantRookTo[q] }

// Color returns the color this quadrant belongs to.
func (q Quadrant) Color() Color { return quadrantColor[q] }

var castlingRightsLostAt = func() [SqLength]CastlingRights {
	var t [SqLength]CastlingRights
	t[SqE1] = CastlingWhite
	t[SqH1] = CastlingWhiteOO
	t[SqA1] = CastlingWhiteOOO
	t[SqE8] = CastlingBlack
	t[SqH8] = CastlingBlackOO
	t[SqA8] = CastlingBlackOOO
	return t
}()

// CastlingRightsLostAt returns the castling rights that are permanently
// forfeited when a move's origin or destination touches sq (a king or
// rook leaving its home square, or a rook being captured on it).
func CastlingRightsLostAt(sq Square) CastlingRights {
	return castlingRightsLostAt[sq]
}

// QuadrantOf returns the Kingside/Queenside quadrant for the given color
// and destination file of the king (FileG=kingside, FileC=queenside).
func QuadrantOf(c Color, kingToFile File) Quadrant {
	switch {
	case c == White && kingToFile == FileG:
		return QuadrantWK
	case c == White && kingToFile == FileC:
		return QuadrantWQ
	case c == Black && kingToFile == FileG:
		return QuadrantBK
	default:
		return QuadrantBQ
	}
}
