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

// Piece is a colored piece kind: color in bit 3, PieceType in bits 0-2.
// This leaves code 0b1111 (15) free, unreachable by any MakePiece result,
// which Move uses as its dedicated "no piece" sentinel for the
// captured-piece field (see move.go).
type Piece int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16

	// PieceCaptureNone is the packed-move sentinel meaning "no piece was
	// captured". Distinct from PieceNone, which means "empty square" on
	// the board array.
	PieceCaptureNone Piece = 15
)

var pieceToChar = string("-KPNBRQ--kpnbrq-")

// String returns the single-character representation of the piece
// (uppercase for white, lowercase for black, '-' for PieceNone).
func (p Piece) String() string {
	return string(pieceToChar[p])
}

// MakePiece builds the piece for the given color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p is a real piece (not PieceNone nor the
// move-encoding sentinel).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}
