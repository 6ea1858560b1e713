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

// Package pacn parses and renders Pure Algebraic Coordinate Notation
// move strings ("e2e4", "e7e8q") against a live position, resolving
// them to one of the position's currently legal moves rather than
// reconstructing a Move from its fields directly, so a syntactically
// valid but illegal string is rejected.
package pacn

import (
	"strings"

	"github.com/op/go-logging"

	"github.com/BlakeSHerrera/sublime/internal/errs"
	myLogging "github.com/BlakeSHerrera/sublime/internal/logging"
	"github.com/BlakeSHerrera/sublime/internal/movegen"
	"github.com/BlakeSHerrera/sublime/internal/position"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

var promotionChars = map[byte]PieceType{
	'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight,
}

// Parse resolves a PACN string against pos's legal moves. It returns
// errs.MalformedPacn if s isn't shaped like "<sq><sq>[promo]",
// errs.PacnConversionError if the square coordinates don't parse, and
// errs.PacnIllegalMove if the move is well-formed but not legal in pos.
func Parse(pos *position.Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, errs.MalformedPacn(s)
	}

	from := MakeSquare(s[0:2])
	if from == SqNone {
		return MoveNone, errs.PacnConversionError(errs.IncompleteSquare(s[0:2]))
	}
	to := MakeSquare(s[2:4])
	if to == SqNone {
		return MoveNone, errs.PacnConversionError(errs.IncompleteSquare(s[2:4]))
	}

	var promo PieceType
	hasPromo := false
	if len(s) == 5 {
		pt, ok := promotionChars[s[4]]
		if !ok {
			return MoveNone, errs.MalformedPacn(s)
		}
		promo = pt
		hasPromo = true
	}

	var buf [MaxLegalMoves]Move
	n := movegen.GenerateLegalMoves(pos, buf[:])
	for i := 0; i < n; i++ {
		m := buf[i]
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() != hasPromo {
			continue
		}
		if hasPromo && m.DestPiece().TypeOf() != promo {
			continue
		}
		return m, nil
	}
	log.Warningf("pacn move %s is not legal on position: %s", s, pos.Fen())
	return MoveNone, errs.PacnIllegalMove(errs.ErrInvalidMove)
}

// String renders m in PACN: origin, destination, and a lowercase
// promotion letter when m promotes. Equivalent to Move.StringUci,
// kept as a named entry point in this package for symmetry with Parse.
func String(m Move) string {
	s := m.StringUci()
	return strings.ToLower(s)
}
