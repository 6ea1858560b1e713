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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set, one bit per square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// per-square / per-file / per-rank constant tables, built once in init().
var (
	sqBb   [SqLength]Bitboard
	fileBb [8]Bitboard
	rankBb [8]Bitboard

	// masks used by ShiftBitboard to clear bits that would otherwise wrap
	// around the board edge after a single-step shift.
	notFileA Bitboard
	notFileH Bitboard
	notRank1 Bitboard
	notRank8 Bitboard

	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
	pawnPushes    [2][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	kingSideClear  [2]Bitboard
	queenSideClear [2]Bitboard
	kingSidePath   [2][]Square
	queenSidePath  [2][]Square
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = BbOne << sq
	}
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b |= sqBb[SquareOf(f, r)]
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b |= sqBb[SquareOf(f, r)]
		}
		rankBb[r] = b
	}
	notFileA = ^fileBb[FileA]
	notFileH = ^fileBb[FileH]
	notRank1 = ^rankBb[Rank1]
	notRank8 = ^rankBb[Rank8]

	initNonSlidingAttacks()
	initMagics(&rookMagics, rookDirections)
	initMagics(&bishopMagics, bishopDirections)
	initCastlingMasks()
}

// Bb returns the bitboard with only this square's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the square's bit.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the square's bit.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b &^= s.Bb()
	return *b
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would otherwise wrap around the left/right board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & notFileH) << 1
	case West:
		return (b & notFileA) >> 1
	case Northeast:
		return (b & notFileH) << 9
	case Southeast:
		return (b & notFileH) >> 7
	case Southwest:
		return (b & notFileA) >> 9
	case Northwest:
		return (b & notFileA) << 7
	default:
		panic(fmt.Sprintf("invalid shift direction %d", d))
	}
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the lowest-indexed set square and clears it in *b.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	if lsb != SqNone {
		*b &= *b - 1
	}
	return lsb
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders the 64 bits MSB-first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func initNonSlidingAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		var king Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				king.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		pseudoAttacks[King][sq] = king

		var knight Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		pseudoAttacks[Knight][sq] = knight

		sqb := sq.Bb()
		pawnAttacks[White][sq] = ShiftBitboard(sqb, Northeast) | ShiftBitboard(sqb, Northwest)
		pawnAttacks[Black][sq] = ShiftBitboard(sqb, Southeast) | ShiftBitboard(sqb, Southwest)

		var pushW, pushB Bitboard
		if sq.RankOf() < Rank8 {
			pushW = ShiftBitboard(sqb, North)
			if sq.RankOf() == Rank2 {
				pushW |= ShiftBitboard(pushW, North)
			}
		}
		if sq.RankOf() > Rank1 {
			pushB = ShiftBitboard(sqb, South)
			if sq.RankOf() == Rank7 {
				pushB |= ShiftBitboard(pushB, South)
			}
		}
		pawnPushes[White][sq] = pushW
		pawnPushes[Black][sq] = pushB
	}
}

func initCastlingMasks() {
	kingSideClear[White] = SqF1.Bb() | SqG1.Bb()
	queenSideClear[White] = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	kingSideClear[Black] = SqF8.Bb() | SqG8.Bb()
	queenSideClear[Black] = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()

	kingSidePath[White] = []Square{SqE1, SqF1, SqG1}
	queenSidePath[White] = []Square{SqE1, SqD1, SqC1}
	kingSidePath[Black] = []Square{SqE8, SqF8, SqG8}
	queenSidePath[Black] = []Square{SqE8, SqD8, SqC8}
}

// GetAttacksBb returns the attack bitboard of a piece of type pt on sq
// against the given full-occupancy bitboard. Pawn is not supported here
// (use GetPawnAttacks); King and Knight ignore occupied.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case King, Knight:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb: unsupported piece type %s", pt))
	}
}

// GetPseudoAttacks returns the King/Knight attack set on an empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the diagonal capture squares of a pawn of
// color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPawnPushes returns the forward (non-capture) squares of a pawn of
// color c on sq, including the double push from its home rank. Callers
// must still intersect with emptiness of the intervening square.
func GetPawnPushes(c Color, sq Square) Bitboard {
	return pawnPushes[c][sq]
}

// CastlingClearMask returns the squares that must be empty between king
// and rook for the given color/side (true=kingside).
func CastlingClearMask(c Color, kingside bool) Bitboard {
	if kingside {
		return kingSideClear[c]
	}
	return queenSideClear[c]
}

// CastlingKingPath returns the squares (origin inclusive) the king
// traverses for the given color/side; none of them may be attacked.
func CastlingKingPath(c Color, kingside bool) []Square {
	if kingside {
		return kingSidePath[c]
	}
	return queenSidePath[c]
}
