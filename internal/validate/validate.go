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

// Package validate independently checks that a Position satisfies the
// invariants its own make/unmake logic assumes but never re-verifies:
// bitboard disjointness, piece-on-square agreement, Zobrist
// consistency, legal en-passant target, castling rights backed by a
// king and rook still on their home squares, and sane piece counts.
package validate

import (
	"errors"

	"github.com/BlakeSHerrera/sublime/internal/errs"
	"github.com/BlakeSHerrera/sublime/internal/position"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

// Position runs every structural check against pos and returns the
// first violation found, or nil if pos is internally consistent.
func Position(pos *position.Position) error {
	if err := checkBitboardAgreement(pos); err != nil {
		return err
	}
	if err := checkPieceCounts(pos); err != nil {
		return err
	}
	if err := checkZobrist(pos); err != nil {
		return err
	}
	if err := checkEnPassant(pos); err != nil {
		return err
	}
	if err := checkCastlingRights(pos); err != nil {
		return err
	}
	if err := checkKingSafety(pos); err != nil {
		return err
	}
	return nil
}

var errBitboardOverlap = errors.New("piece bitboards overlap")

// checkBitboardAgreement verifies the twelve piece bitboards are
// pairwise disjoint, that their union matches each color's occupancy
// bitboard, and that the board array agrees with the bitboards square
// by square.
func checkBitboardAgreement(pos *position.Position) error {
	var seen [ColorLength]Bitboard
	for c := White; c < ColorLength; c++ {
		var union Bitboard
		for pt := King; pt < PtLength; pt++ {
			bb := pos.PiecesBb(c, pt)
			if bb&union != 0 {
				return errs.WrappedCorruptedBitboard(errBitboardOverlap)
			}
			union |= bb
		}
		if union != pos.OccupiedBb(c) {
			return errs.WrappedCorruptedBitboard(errs.OccupancyMismatch(union ^ pos.OccupiedBb(c)))
		}
		seen[c] = union
	}
	if seen[White]&seen[Black] != 0 {
		return errs.WrappedCorruptedBitboard(errs.OccupancyMismatch(seen[White] & seen[Black]))
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		pc := pos.PieceOn(sq)
		inWhite := seen[White].Has(sq)
		inBlack := seen[Black].Has(sq)
		mismatch := false
		switch {
		case pc == PieceNone && (inWhite || inBlack):
			mismatch = true
		case pc != PieceNone && pc.ColorOf() == White && !inWhite:
			mismatch = true
		case pc != PieceNone && pc.ColorOf() == Black && !inBlack:
			mismatch = true
		}
		if mismatch {
			return errs.WrappedCorruptedBitboard(errs.OccupancyMismatch(sq.Bb()))
		}
	}
	return nil
}

// startingCounts is the natural starting complement of each
// promotion-capable piece kind.
var startingCounts = [4]struct {
	pt    PieceType
	count int
}{
	{Rook, 2},
	{Knight, 2},
	{Bishop, 2},
	{Queen, 1},
}

// checkPieceCounts enforces the material bounds: exactly one king per
// side, no pawn on the first or last rank, at most 8 pawns, and for every other
// kind no more pieces than its starting count plus whatever promotions
// the missing pawns could have produced. Extra same-colored-square
// bishops are held to the same promotion budget.
func checkPieceCounts(pos *position.Position) error {
	backRanks := Rank1.Bb() | Rank8.Bb()
	for c := White; c < ColorLength; c++ {
		kings := pos.PiecesBb(c, King).PopCount()
		if kings == 0 {
			return errs.MissingKing(c)
		}
		if kings > 1 {
			return errs.TooManyPieces(MakePiece(c, King), kings)
		}

		if pos.PiecesBb(c, Pawn)&backRanks != 0 {
			return errs.ErrInvalidPawnRank
		}
		pawns := pos.PiecesBb(c, Pawn).PopCount()
		if pawns > 8 {
			return errs.TooManyPieces(MakePiece(c, Pawn), pawns)
		}

		promotionsLeft := 8 - pawns
		for _, sc := range startingCounts {
			count := pos.PiecesBb(c, sc.pt).PopCount()
			if count > sc.count+promotionsLeft {
				return errs.TooManyPieces(MakePiece(c, sc.pt), count)
			}
			if count > sc.count {
				promotionsLeft -= count - sc.count
			}
		}

		light, dark := 0, 0
		bb := pos.PiecesBb(c, Bishop)
		for bb != 0 {
			if isLightSquare(bb.PopLsb()) {
				light++
			} else {
				dark++
			}
		}
		excessBishops := 0
		if light > 1 {
			excessBishops += light - 1
		}
		if dark > 1 {
			excessBishops += dark - 1
		}
		if excessBishops > 0 && excessBishops > 8-pawns {
			return errs.SameColorBishops(MakePiece(c, Bishop), c)
		}
	}
	return nil
}

func isLightSquare(sq Square) bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 == 1
}

// checkZobrist reports a mismatch between the incrementally maintained
// Zobrist key and one recomputed from scratch.
func checkZobrist(pos *position.Position) error {
	if pos.Zobrist() != pos.RecomputeZobrist() {
		return errs.WrappedCorruptedBitboard(errs.ZobristMismatch(pos.RecomputeZobrist(), pos.Zobrist()))
	}
	return nil
}

// checkEnPassant checks the en-passant target: when set, it must be on
// the rank matching the side to move, the target square
// itself must be empty, the square the double push crossed must hold an
// enemy pawn, and at least one of the mover's pawns must attack the
// target.
func checkEnPassant(pos *position.Position) error {
	sq := pos.EpSquare()
	if sq == SqNone {
		return nil
	}
	us := pos.SideToMove()
	if sq.RankOf() != us.EpRank() {
		return errs.InvalidEnPassantCode(uint32(sq))
	}
	if pos.PieceOn(sq) != PieceNone {
		return errs.ErrEnPassantSquareOccupied
	}
	capSq := sq.To(us.Flip().PawnDirection())
	capPc := pos.PieceOn(capSq)
	if capPc == PieceNone || capPc.TypeOf() != Pawn || capPc.ColorOf() == us {
		return errs.ErrNoEnPassantDefender
	}
	if GetPawnAttacks(us.Flip(), sq)&pos.PiecesBb(us, Pawn) == 0 {
		return errs.ErrNoEnPassantAttacker
	}
	return nil
}

// checkCastlingRights enforces that a held right implies the matching
// king and rook still occupy their home squares.
func checkCastlingRights(pos *position.Position) error {
	rights := pos.CastlingRights()
	checks := []struct {
		quadrant Quadrant
		kingPc   Piece
		rookPc   Piece
	}{
		{QuadrantWK, WhiteKing, WhiteRook},
		{QuadrantWQ, WhiteKing, WhiteRook},
		{QuadrantBK, BlackKing, BlackRook},
		{QuadrantBQ, BlackKing, BlackRook},
	}
	for _, c := range checks {
		if !rights.Has(c.quadrant.Right()) {
			continue
		}
		if pos.PieceOn(c.quadrant.KingFrom()) != c.kingPc || pos.PieceOn(c.quadrant.RookFrom()) != c.rookPc {
			return errs.InvalidCastling(c.quadrant)
		}
	}
	return nil
}

// checkKingSafety enforces that the side not to move isn't currently
// in check, a position reached only by an illegal move by the mover.
func checkKingSafety(pos *position.Position) error {
	them := pos.SideToMove().Flip()
	if pos.IsAttacked(pos.KingSquare(them), pos.SideToMove()) {
		return errs.ErrOpponentInCheck
	}
	return nil
}
