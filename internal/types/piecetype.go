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

// PieceType is a piece kind, independent of color.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	King     PieceType = 1
	Pawn     PieceType = 2
	Knight   PieceType = 3
	Bishop   PieceType = 4
	Rook     PieceType = 5
	Queen    PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the full name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-KPNBRQ")

// Char returns the single-character FEN-style letter for the piece type
// ('-' for PtNone), always uppercase; callers lowercase for black.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// IsValid checks that pt is one of King..Queen.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// PromotionTypeFromChar resolves a FEN/PACN promotion letter (q/r/b/n,
// case-insensitive) to a PieceType, or PtNone if the letter is not a
// valid promotion piece.
func PromotionTypeFromChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return PtNone
	}
}
