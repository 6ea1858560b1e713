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

// Package position implements the bitboard-indexed chess position: the
// twelve piece bitboards, color/full occupancy, the redundant
// piece-on-square array, castling/en-passant/move-count side info, and
// the incrementally maintained Zobrist hash. Make/unmake is the only
// way the board state changes once constructed.
package position

import (
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/BlakeSHerrera/sublime/internal/logging"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Position holds a complete, self-consistent chess position.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	castlingRights CastlingRights
	sideToMove     Color
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	zobrist Key
}

// Undo carries the side-info and Zobrist key a caller must save before
// Position.MakeMove and hand back to Position.UnmakeMove. Board-only
// state needs no caller-side bookkeeping: UnmakeMove derives it from the
// Move itself.
type Undo struct {
	CastlingRights CastlingRights
	EpSquare       Square
	HalfmoveClock  int
	FullmoveNumber int
	Zobrist        Key
}

// Clone returns an independent copy. Position holds no pointers or
// slices, so a value copy is sufficient; callers doing parallel search
// or perft must each own a Clone rather than share one *Position.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// Zobrist returns the incrementally maintained hash of the position.
func (p *Position) Zobrist() Key { return p.zobrist }

// RecomputeZobrist recomputes the Zobrist key from scratch, ignoring the
// incrementally maintained value. Used by the validator as a cross-check
// and by FEN parsing to seed the initial key.
func (p *Position) RecomputeZobrist() Key { return p.computeZobrist() }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpSquare returns the en-passant target square, or SqNone if en
// passant is not legal in this position.
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfmoveClock returns the halfmove clock used for the 50-move rule.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current fullmove number (starts at 1).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// PieceOn returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of the given color and type.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBb returns the occupancy bitboard of one color.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns the occupancy bitboard of both colors.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// KingSquare returns the square of the king of color c.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// IsAttacked reports whether sq is attacked by any piece of color by,
// against the current full occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// IsLegal reports whether a pseudo-legal move m leaves the mover's own
// king safe. Implemented as a board-only partial-push, a king-safety
// check, and a partial-pop; side info never factors into check safety.
func (p *Position) IsLegal(m Move) bool {
	mover := m.OriginPiece().ColorOf()
	p.partialPush(m)
	legal := !p.IsAttacked(p.kingSquare[mover], mover.Flip())
	p.partialPop(m)
	return legal
}

// MakeMove applies m to the position in place and returns the Undo the
// caller must retain to reverse it with UnmakeMove. The move generator
// never hands MakeMove a pseudo-legal-but-illegal move (it filters with
// IsLegal first), but MakeMove itself does not re-check legality.
func (p *Position) MakeMove(m Move) Undo {
	undo := Undo{
		CastlingRights: p.castlingRights,
		EpSquare:       p.epSquare,
		HalfmoveClock:  p.halfmoveClock,
		FullmoveNumber: p.fullmoveNumber,
		Zobrist:        p.zobrist,
	}
	p.partialPush(m)
	p.updateSideInfo(m)
	return undo
}

// UnmakeMove reverses m, restoring the position to exactly the state it
// held before the matching MakeMove call.
func (p *Position) UnmakeMove(m Move, u Undo) {
	p.partialPop(m)
	p.castlingRights = u.CastlingRights
	p.epSquare = u.EpSquare
	p.halfmoveClock = u.HalfmoveClock
	p.fullmoveNumber = u.FullmoveNumber
	p.zobrist = u.Zobrist
	p.sideToMove = p.sideToMove.Flip()
}

// partialPush performs the board-only half of make-move: remove the
// origin piece, remove any captured piece (at the capture square, which
// differs from the destination on en passant), place the destination
// piece, and for castling also relocate the rook.
func (p *Position) partialPush(m Move) {
	from, to := m.From(), m.To()
	p.removePiece(from)
	if m.CapturedPiece() != PieceCaptureNone {
		p.removePiece(m.CaptureSquare())
	}
	p.putPiece(m.DestPiece(), to)
	if m.IsCastling() {
		q := m.Quadrant()
		rook := p.removePiece(q.RookFrom())
		p.putPiece(rook, q.RookTo())
	}
}

// partialPop reverses partialPush.
func (p *Position) partialPop(m Move) {
	if m.IsCastling() {
		q := m.Quadrant()
		rook := p.removePiece(q.RookTo())
		p.putPiece(rook, q.RookFrom())
	}
	p.removePiece(m.To())
	p.putPiece(m.OriginPiece(), m.From())
	if m.CapturedPiece() != PieceCaptureNone {
		p.putPiece(m.CapturedPiece(), m.CaptureSquare())
	}
}

// updateSideInfo performs the side-info half of make-move: clear any
// stale en-passant flag, update the halfmove clock and en-passant
// target, revoke castling rights touched by this move, and flip the
// side to move, XOR-ing in/out the matching Zobrist terms throughout.
//
// Only a pawn move resets the halfmove clock; a non-pawn capture does
// not.
func (p *Position) updateSideInfo(m Move) {
	mover := p.sideToMove

	if p.epSquare != SqNone {
		p.zobrist ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
		p.epSquare = SqNone
	}

	switch m.OriginPiece().TypeOf() {
	case Pawn:
		p.halfmoveClock = 0
		if m.IsDoublePawnPush() {
			// The crossed square only becomes an en-passant target when
			// an enemy pawn stands ready to capture on it.
			ep := m.To().To(mover.Flip().PawnDirection())
			if GetPawnAttacks(mover, ep)&p.piecesBb[mover.Flip()][Pawn] != 0 {
				p.epSquare = ep
				p.zobrist ^= zobristBase.enPassantFile[ep.FileOf()]
			}
		}
	case King:
		p.revokeCastling(castlingRightsOf(mover))
		p.halfmoveClock++
	default:
		p.halfmoveClock++
	}

	if lost := CastlingRightsLostAt(m.From()) | CastlingRightsLostAt(m.To()); lost != CastlingNone {
		p.revokeCastling(lost)
	}

	p.sideToMove = mover.Flip()
	p.zobrist ^= zobristBase.nextPlayer
	if p.sideToMove == White {
		p.fullmoveNumber++
	}
}

func castlingRightsOf(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// revokeCastling clears any of lost still held, XOR-ing the old
// castling-rights Zobrist term out and the new one in.
func (p *Position) revokeCastling(lost CastlingRights) {
	if p.castlingRights&lost == CastlingNone {
		return
	}
	p.zobrist ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(lost)
	p.zobrist ^= zobristBase.castlingRights[p.castlingRights]
}

func (p *Position) putPiece(pc Piece, sq Square) {
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = pc
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.zobrist ^= zobristBase.pieces[pc][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.zobrist ^= zobristBase.pieces[pc][sq]
	return pc
}

// computeZobrist recomputes the Zobrist key from the current board and
// side info, ignoring the incrementally maintained field entirely.
func (p *Position) computeZobrist() Key {
	var key Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobristBase.pieces[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristBase.nextPlayer
	}
	key ^= zobristBase.castlingRights[p.castlingRights]
	if p.epSquare != SqNone {
		key ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
	}
	return key
}

// String renders the FEN followed by an ASCII board.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Fen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	return sb.String()
}

// StringBoard renders an 8x8 ASCII board, rank 8 at the top.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
