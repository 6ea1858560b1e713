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

package position

import (
	"strconv"
	"strings"

	"github.com/BlakeSHerrera/sublime/internal/errs"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

var fenPieceChars = map[byte]Piece{
	'K': WhiteKing, 'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen,
	'k': BlackKing, 'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen,
}

// NewPositionFen builds a position from a standard six-field FEN
// string. All six fields are required; a record that stops short
// reports which section is missing.
func NewPositionFen(fen string) (*Position, error) {
	p, err := parseFen(fen)
	if err != nil {
		log.Errorf("fen not valid and position can't be created: %v", err)
		return nil, err
	}
	return p, nil
}

func parseFen(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 6 {
		return nil, errs.MissingSection(errs.FenSection(len(fields)))
	}
	if len(fields) > 6 {
		return nil, errs.FenErrorf(errs.SectionFullmove, "unexpected trailing fields", nil)
	}

	p := &Position{epSquare: SqNone}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, errs.FenErrorf(errs.SectionActiveColor, "must be 'w' or 'b'", nil)
	}

	if fields[2] != "-" {
		if err := p.parseCastling(fields[2]); err != nil {
			return nil, err
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, errs.FenErrorf(errs.SectionEnPassant, "bad coordinate", errs.IncompleteSquare(fields[3]))
		}
		if sq.RankOf() != p.sideToMove.EpRank() {
			return nil, errs.FenErrorf(errs.SectionEnPassant, "rank does not match side to move", nil)
		}
		p.epSquare = sq
	}

	n, err := strconv.Atoi(fields[4])
	if err != nil || n < 0 {
		return nil, errs.FenErrorf(errs.SectionHalfmove, "must be a non-negative integer", err)
	}
	p.halfmoveClock = n

	n, err = strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return nil, errs.FenErrorf(errs.SectionFullmove, "must be a positive integer", err)
	}
	p.fullmoveNumber = n

	p.zobrist = p.computeZobrist()
	return p, nil
}

// parsePlacement walks ranks 8->1, populating the piece bitboards and
// board array directly.
func (p *Position) parsePlacement(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return errs.FenErrorf(errs.SectionBoard, "expected 8 ranks separated by '/'", nil)
	}
	for i, row := range rows {
		rank := Rank8 - Rank(i)
		file := FileA
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += File(c - '0')
			default:
				pc, ok := fenPieceChars[c]
				if !ok {
					return errs.FenErrorf(errs.SectionBoard, "unexpected character '"+string(c)+"'", nil)
				}
				if file > FileH {
					return errs.FenErrorf(errs.SectionBoard, "rank overflows 8 files", nil)
				}
				p.putPiece(pc, SquareOf(file, rank))
				file++
			}
		}
		if file != File(8) {
			return errs.FenErrorf(errs.SectionBoard, "incomplete rank", nil)
		}
	}
	return nil
}

// parseCastling validates the castling field is built from a subset of
// "KQkq" in strict order.
func (p *Position) parseCastling(field string) error {
	const order = "KQkq"
	rights := map[byte]CastlingRights{
		'K': CastlingWhiteOO, 'Q': CastlingWhiteOOO, 'k': CastlingBlackOO, 'q': CastlingBlackOOO,
	}
	next := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		idx := strings.IndexByte(order, c)
		if idx < 0 {
			return errs.FenErrorf(errs.SectionCastling, "unexpected character '"+string(c)+"'", nil)
		}
		if idx < next {
			return errs.CastlingOutOfOrder()
		}
		next = idx + 1
		p.castlingRights.Add(rights[c])
	}
	return nil
}

// Fen renders the position back to its six-field FEN string; the
// inverse of NewPositionFen.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			sb.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
