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

import "fmt"

// Move is a fully self-contained 64-bit packed move. Unlike a minimal
// from/to encoding, every field needed to undo the move is carried in
// the value itself, so make/unmake never has to re-derive captured
// piece or en-passant details from board state.
//
// Bit layout:
//
//	bits  0- 5  origin square      (6 bits)
//	bits  6- 9  origin piece       (4 bits)
//	bits 10-15  destination square (6 bits)
//	bits 16-19  destination piece  (4 bits, differs from origin on promotion)
//	bits 20-25  captured square    (6 bits, differs from dest square on e.p.)
//	bits 26-29  captured piece     (4 bits, PieceCaptureNone if none)
//	bit  30     double pawn push flag
//	bits 31-33  en-passant file (of the new en-passant target square)
//	bit  34     this move is an en-passant capture
//	bit  35     this move is a castling move
//	bits 36-37  castling quadrant (valid only when bit 35 is set)
type Move uint64

const (
	moveShiftOriginSq    = 0
	moveShiftOriginPc    = 6
	moveShiftDestSq      = 10
	moveShiftDestPc      = 16
	moveShiftCaptureSq   = 20
	moveShiftCapturePc   = 26
	moveShiftDoublePush  = 30
	moveShiftEpFile      = 31
	moveShiftEpCapture   = 34
	moveShiftCastling    = 35
	moveShiftQuadrant    = 36

	moveMask6 = 0x3F
	moveMask4 = 0xF
	moveMask3 = 0x7
	moveMask2 = 0x3
)

// MoveNone is the zero value, never produced by any legal constructor
// since origin and destination square would coincide.
const MoveNone Move = 0

// NewMove builds a normal (non-castling, non-e.p., non-promotion) move.
func NewMove(from, to Square, fromPc, toPc Piece, captureSq Square, capturePc Piece) Move {
	return newMoveBits(from, to, fromPc, toPc, captureSq, capturePc, false, FileNone, false, false, 0)
}

// NewDoublePawnPush builds a two-square pawn advance, recording the file
// of the en-passant target square it creates.
func NewDoublePawnPush(from, to Square, pc Piece, epFile File) Move {
	return newMoveBits(from, to, pc, pc, SqNone, PieceCaptureNone, true, epFile, false, false, 0)
}

// NewEnPassantCapture builds an en-passant capture, where the captured
// pawn's square differs from the destination square.
func NewEnPassantCapture(from, to Square, pc Piece, captureSq Square, capturedPc Piece) Move {
	return newMoveBits(from, to, pc, pc, captureSq, capturedPc, false, FileNone, true, false, 0)
}

// NewPromotion builds a (possibly capturing) pawn promotion.
func NewPromotion(from, to Square, fromPc, promotedPc Piece, captureSq Square, capturePc Piece) Move {
	return newMoveBits(from, to, fromPc, promotedPc, captureSq, capturePc, false, FileNone, false, false, 0)
}

// NewCastling builds a castling move for the given quadrant.
func NewCastling(q Quadrant, kingPc Piece) Move {
	return newMoveBits(q.KingFrom(), q.KingTo(), kingPc, kingPc, SqNone, PieceCaptureNone, false, FileNone, false, true, q)
}

func newMoveBits(from, to Square, fromPc, toPc Piece, captureSq Square, capturePc Piece,
	doublePush bool, epFile File, epCapture bool, castling bool, q Quadrant) Move {

	if captureSq == SqNone {
		captureSq = 0
	}
	ef := epFile
	if ef == FileNone {
		ef = 0
	}

	m := Move(from)<<moveShiftOriginSq |
		Move(fromPc)<<moveShiftOriginPc |
		Move(to)<<moveShiftDestSq |
		Move(toPc)<<moveShiftDestPc |
		Move(captureSq)<<moveShiftCaptureSq |
		Move(capturePc)<<moveShiftCapturePc |
		Move(ef)<<moveShiftEpFile

	if doublePush {
		m |= 1 << moveShiftDoublePush
	}
	if epCapture {
		m |= 1 << moveShiftEpCapture
	}
	if castling {
		m |= 1<<moveShiftCastling | Move(q)<<moveShiftQuadrant
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(m>>moveShiftOriginSq) & moveMask6
}

// OriginPiece returns the piece as it stood on the origin square.
func (m Move) OriginPiece() Piece {
	return Piece(m>>moveShiftOriginPc) & moveMask4
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m>>moveShiftDestSq) & moveMask6
}

// DestPiece returns the piece as it will stand on the destination
// square (differs from OriginPiece only on promotion).
func (m Move) DestPiece() Piece {
	return Piece(m>>moveShiftDestPc) & moveMask4
}

// CaptureSquare returns the square of the captured piece. On a capture
// it equals To() except on en-passant captures; a non-capture stores
// SqA1 here.
func (m Move) CaptureSquare() Square {
	return Square(m>>moveShiftCaptureSq) & moveMask6
}

// CapturedPiece returns the captured piece, or PieceCaptureNone.
func (m Move) CapturedPiece() Piece {
	return Piece(m>>moveShiftCapturePc) & moveMask4
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceCaptureNone
}

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m&(1<<moveShiftDoublePush) != 0
}

// EpFile returns the file of the en-passant target square created by a
// double pawn push. Only meaningful when IsDoublePawnPush is true.
func (m Move) EpFile() File {
	return File(m>>moveShiftEpFile) & moveMask3
}

// IsEnPassantCapture reports whether this move captures en passant.
func (m Move) IsEnPassantCapture() bool {
	return m&(1<<moveShiftEpCapture) != 0
}

// IsCastling reports whether this move is a castling move.
func (m Move) IsCastling() bool {
	return m&(1<<moveShiftCastling) != 0
}

// Quadrant returns the castling quadrant. Only meaningful when
// IsCastling is true.
func (m Move) Quadrant() Quadrant {
	return Quadrant(m>>moveShiftQuadrant) & moveMask2
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.OriginPiece().TypeOf() == Pawn && m.DestPiece().TypeOf() != Pawn
}

// MoveType classifies the move into one of the four shapes make/unmake
// needs to special-case.
func (m Move) MoveType() MoveType {
	switch {
	case m.IsCastling():
		return Castling
	case m.IsEnPassantCapture():
		return EnPassant
	case m.IsPromotion():
		return Promotion
	default:
		return Normal
	}
}

// StringUci renders the move in long algebraic / PACN form, e.g. "e2e4"
// or "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionChar[m.DestPiece().TypeOf()])
	}
	return s
}

var promotionChar = map[PieceType]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

// String renders a verbose debug form of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s type=%s piece=%s capture=%s", m.StringUci(), m.MoveType(), m.OriginPiece(), m.CapturedPiece())
}
