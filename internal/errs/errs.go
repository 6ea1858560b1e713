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

// Package errs defines the structured error taxonomy returned by FEN,
// PACN, and move-legality parsing/validation throughout this module.
// Each error is its own type so callers can type-switch or use
// errors.As instead of matching on string messages.
package errs

import (
	"fmt"

	. "github.com/BlakeSHerrera/sublime/internal/types"
)

// FenSection names one of the six whitespace-separated fields of a FEN
// record, used by MissingSection.
type FenSection int

const (
	SectionBoard FenSection = iota
	SectionActiveColor
	SectionCastling
	SectionEnPassant
	SectionHalfmove
	SectionFullmove
)

func (s FenSection) String() string {
	return [...]string{"board", "active color", "castling rights", "en passant", "halfmove clock", "fullmove number"}[s]
}

// ConversionError reports a malformed square/file/rank coordinate.
type ConversionError struct {
	Kind  string // "file", "rank", or "square"
	Value string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid %s coordinate: %q", e.Kind, e.Value)
}

func InvalidFile(v string) error   { return &ConversionError{"file", v} }
func InvalidRank(v string) error   { return &ConversionError{"rank", v} }
func IncompleteSquare(v string) error { return &ConversionError{"square", v} }

// FenError reports a structurally malformed FEN record.
type FenError struct {
	Reason  string
	Section FenSection
	Cause   error
}

func (e *FenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fen: %s (%s): %v", e.Reason, e.Section, e.Cause)
	}
	return fmt.Sprintf("fen: %s (%s)", e.Reason, e.Section)
}

func (e *FenError) Unwrap() error { return e.Cause }

func FenErrorf(section FenSection, reason string, cause error) error {
	return &FenError{Reason: reason, Section: section, Cause: cause}
}

func MissingSection(s FenSection) error {
	return &FenError{Reason: "missing section", Section: s}
}

func CastlingOutOfOrder() error {
	return &FenError{Reason: "castling letters not in KQkq order", Section: SectionCastling}
}

// IllegalMove reports why a syntactically valid move cannot be played.
type IllegalMove struct {
	Reason string
}

func (e *IllegalMove) Error() string { return "illegal move: " + e.Reason }

var (
	ErrInCheck             = &IllegalMove{"king would be left in check"}
	ErrInvalidMove         = &IllegalMove{"move is not pseudo-legal in this position"}
	ErrOpponentPieceMove   = &IllegalMove{"origin square holds the opponent's piece"}
	ErrEmptySquareMove     = &IllegalMove{"origin square is empty"}
	ErrAlliedCapture       = &IllegalMove{"destination square holds a piece of the same color"}
	ErrCastleOutOfCheck    = &IllegalMove{"cannot castle while in check"}
	ErrCastleThroughCheck  = &IllegalMove{"king would cross or land on an attacked square"}
	ErrInvalidPromotion    = &IllegalMove{"promotion piece type is not queen, rook, bishop, or knight"}
)

// PacnError reports a malformed Pure Algebraic Coordinate Notation move.
type PacnError struct {
	Reason string
	Cause  error
}

func (e *PacnError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pacn: %s: %v", e.Reason, e.Cause)
	}
	return "pacn: " + e.Reason
}

func (e *PacnError) Unwrap() error { return e.Cause }

func MalformedPacn(s string) error {
	return &PacnError{Reason: fmt.Sprintf("malformed move string %q", s)}
}

func PacnConversionError(cause error) error {
	return &PacnError{Reason: "bad coordinate", Cause: cause}
}

func PacnIllegalMove(cause error) error {
	return &PacnError{Reason: "move is illegal", Cause: cause}
}

// CorruptedBitboard reports an internal consistency failure between the
// piece-on-square array and the bitboards, or between the incremental
// and recomputed Zobrist key. This should never happen from user input;
// it indicates a bug in make/unmake.
type CorruptedBitboard struct {
	Reason   string
	Expected uint64
	Actual   uint64
}

func (e *CorruptedBitboard) Error() string {
	return fmt.Sprintf("corrupted bitboard: %s (expected %#x, got %#x)", e.Reason, e.Expected, e.Actual)
}

func OccupancyMismatch(actual Bitboard) error {
	return &CorruptedBitboard{Reason: "occupancy mismatch", Actual: uint64(actual)}
}

func ZobristMismatch(expected, actual Key) error {
	return &CorruptedBitboard{Reason: "zobrist key mismatch", Expected: uint64(expected), Actual: uint64(actual)}
}

func InvalidEnPassantCode(code uint32) error {
	return &CorruptedBitboard{Reason: "invalid en passant code", Actual: uint64(code)}
}

// IllegalPosition reports that a fully-parsed FEN describes a board
// that cannot arise from legal play.
type IllegalPosition struct {
	Reason   string
	Piece    Piece
	Color    Color
	Quadrant Quadrant
	Cause    error
}

func (e *IllegalPosition) Error() string {
	return "illegal position: " + e.Reason
}

func (e *IllegalPosition) Unwrap() error { return e.Cause }

var ErrOpponentInCheck = &IllegalPosition{Reason: "side not to move is in check"}
var ErrInvalidEPTarget = &IllegalPosition{Reason: "en passant target square is not reachable by a double pawn push"}
var ErrInvalidPawnRank = &IllegalPosition{Reason: "pawn present on the first or last rank"}
var ErrEnPassantSquareOccupied = &IllegalPosition{Reason: "en passant target square is occupied"}
var ErrNoEnPassantAttacker = &IllegalPosition{Reason: "en passant target square has no capturing pawn"}
var ErrNoEnPassantDefender = &IllegalPosition{Reason: "en passant target square has no pawn to capture"}

func TooManyPieces(p Piece, count int) error {
	return &IllegalPosition{Reason: fmt.Sprintf("too many %s pieces (%d)", p, count), Piece: p}
}

func MissingKing(c Color) error {
	return &IllegalPosition{Reason: fmt.Sprintf("%s has no king", c), Color: c}
}

func SameColorBishops(p Piece, c Color) error {
	return &IllegalPosition{Reason: fmt.Sprintf("%s has two same-colored-square bishops", c), Piece: p, Color: c}
}

func InvalidCastling(q Quadrant) error {
	return &IllegalPosition{Reason: fmt.Sprintf("castling right %s asserted but king/rook not on home squares", q.Right()), Quadrant: q}
}

func WrappedCorruptedBitboard(cause error) error {
	return &IllegalPosition{Reason: "corrupted bitboard", Cause: cause}
}
