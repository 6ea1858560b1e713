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

// Package movegen enumerates legal moves from a chess position: magic
// lookup attacks for sliding pieces, precomputed tables for king/knight/
// pawn, pawn pushes and promotions, castling (clearance and king-path
// attack checks), and a make/unmake legality filter.
package movegen

import (
	"github.com/BlakeSHerrera/sublime/internal/position"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

// GenerateLegalMoves writes every legal move available to the side to
// move into buf and returns how many moves were written. buf must have
// capacity at least MaxLegalMoves; the generator never allocates and
// never returns an error. It does not check that pos itself is legal:
// a position with a king missing still yields moves for the pieces
// that are present.
func GenerateLegalMoves(pos *position.Position, buf []Move) int {
	us := pos.SideToMove()
	them := us.Flip()
	ownOcc := pos.OccupiedBb(us)
	enemyOcc := pos.OccupiedBb(them)
	occ := pos.OccupiedAll()

	n := 0
	n = genPawnMoves(pos, us, them, occ, enemyOcc, buf, n)
	n = genPieceMoves(pos, King, us, ownOcc, occ, buf, n)
	n = genPieceMoves(pos, Knight, us, ownOcc, occ, buf, n)
	n = genPieceMoves(pos, Bishop, us, ownOcc, occ, buf, n)
	n = genPieceMoves(pos, Rook, us, ownOcc, occ, buf, n)
	n = genPieceMoves(pos, Queen, us, ownOcc, occ, buf, n)
	n = genCastling(pos, us, occ, buf, n)
	return n
}

// appendLegal runs the make/unmake legality filter and, if m survives,
// writes it to buf.
func appendLegal(pos *position.Position, buf []Move, n int, m Move) int {
	if n >= len(buf) {
		return n
	}
	if pos.IsLegal(m) {
		buf[n] = m
		n++
	}
	return n
}

// genPieceMoves generates king/knight/bishop/rook/queen pseudo-legal
// moves: every square the piece attacks that isn't occupied by its own
// side is a legal destination candidate (sliders consult the magic
// tables against full occupancy; king/knight use the precomputed
// pseudo-attack tables).
func genPieceMoves(pos *position.Position, pt PieceType, us Color, ownOcc, occ Bitboard, buf []Move, n int) int {
	pieces := pos.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		fromPc := pos.PieceOn(from)

		var attacks Bitboard
		if pt == King || pt == Knight {
			attacks = GetPseudoAttacks(pt, from)
		} else {
			attacks = GetAttacksBb(pt, from, occ)
		}

		dests := attacks &^ ownOcc
		for dests != 0 {
			to := dests.PopLsb()
			capturePc := pos.PieceOn(to)
			captureSq := to
			if capturePc == PieceNone {
				capturePc = PieceCaptureNone
				captureSq = SqNone
			}
			n = appendLegal(pos, buf, n, NewMove(from, to, fromPc, fromPc, captureSq, capturePc))
		}
	}
	return n
}

// genPawnMoves handles pawn captures (including en passant), quiet
// pushes (single and, from the home rank, double), and promotions:
// the one piece type whose moves aren't simply "wherever it attacks".
func genPawnMoves(pos *position.Position, us, them Color, occ, enemyOcc Bitboard, buf []Move, n int) int {
	pawns := pos.PiecesBb(us, Pawn)
	epSq := pos.EpSquare()
	var epBb Bitboard
	if epSq != SqNone {
		epBb = epSq.Bb()
	}
	promRank := us.PromotionRank()
	homeRank := us.PawnHomeRank()

	for pawns != 0 {
		from := pawns.PopLsb()
		fromPc := pos.PieceOn(from)

		// Captures, including the en-passant target square.
		targets := GetPawnAttacks(us, from) & (enemyOcc | epBb)
		for targets != 0 {
			to := targets.PopLsb()
			if to == epSq {
				capSq := to.To(them.PawnDirection())
				n = appendLegal(pos, buf, n, NewEnPassantCapture(from, to, fromPc, capSq, pos.PieceOn(capSq)))
				continue
			}
			capturePc := pos.PieceOn(to)
			if to.RankOf() == promRank {
				n = appendPromotions(pos, buf, n, from, to, us, fromPc, to, capturePc)
			} else {
				n = appendLegal(pos, buf, n, NewMove(from, to, fromPc, fromPc, to, capturePc))
			}
		}

		// Quiet pushes, gated by the precomputed push table so a
		// blocked single step also blocks the double step behind it.
		reachable := GetPawnPushes(us, from) &^ occ
		single := from.To(us.PawnDirection())
		if !reachable.Has(single) {
			continue
		}
		if single.RankOf() == promRank {
			n = appendPromotions(pos, buf, n, from, single, us, fromPc, SqNone, PieceCaptureNone)
		} else {
			n = appendLegal(pos, buf, n, NewMove(from, single, fromPc, fromPc, SqNone, PieceCaptureNone))
		}
		if from.RankOf() != homeRank {
			continue
		}
		double := single.To(us.PawnDirection())
		if reachable.Has(double) {
			n = appendLegal(pos, buf, n, NewDoublePawnPush(from, double, fromPc, from.FileOf()))
		}
	}
	return n
}

var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

// appendPromotions emits the four underpromotion choices for a pawn
// reaching the last rank, sharing the same origin/capture details.
func appendPromotions(pos *position.Position, buf []Move, n int, from, to Square, us Color, fromPc Piece, captureSq Square, capturePc Piece) int {
	for _, pt := range promotionKinds {
		promoted := MakePiece(us, pt)
		n = appendLegal(pos, buf, n, NewPromotion(from, to, fromPc, promoted, captureSq, capturePc))
	}
	return n
}

// genCastling generates the up-to-two castling moves available to the
// side to move: the right must still be held, the squares between
// king and rook must be empty, and the king's whole traversal path
// (including its origin) must not be attacked.
func genCastling(pos *position.Position, us Color, occ Bitboard, buf []Move, n int) int {
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	kingPc := pos.PieceOn(kingSq)
	rights := pos.CastlingRights()

	kingside, queenside := QuadrantWK, QuadrantWQ
	if us == Black {
		kingside, queenside = QuadrantBK, QuadrantBQ
	}

	if rights.Has(kingside.Right()) &&
		occ&CastlingClearMask(us, true) == 0 &&
		!anyAttacked(pos, CastlingKingPath(us, true), them) {
		n = appendLegal(pos, buf, n, NewCastling(kingside, kingPc))
	}
	if rights.Has(queenside.Right()) &&
		occ&CastlingClearMask(us, false) == 0 &&
		!anyAttacked(pos, CastlingKingPath(us, false), them) {
		n = appendLegal(pos, buf, n, NewCastling(queenside, kingPc))
	}
	return n
}

func anyAttacked(pos *position.Position, squares []Square, by Color) bool {
	for _, sq := range squares {
		if pos.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}
