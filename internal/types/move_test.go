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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMoveAccessors(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, WhitePawn, SqNone, PieceCaptureNone)
	require.Equal(t, SqE2, m.From())
	require.Equal(t, SqE4, m.To())
	require.Equal(t, WhitePawn, m.OriginPiece())
	require.Equal(t, WhitePawn, m.DestPiece())
	require.False(t, m.IsCapture())
	require.False(t, m.IsCastling())
	require.False(t, m.IsPromotion())
	require.False(t, m.IsDoublePawnPush())
}

func TestCaptureMoveAccessors(t *testing.T) {
	m := NewMove(SqD4, SqE5, WhitePawn, WhitePawn, SqE5, BlackPawn)
	require.True(t, m.IsCapture())
	require.Equal(t, SqE5, m.CaptureSquare())
	require.Equal(t, BlackPawn, m.CapturedPiece())
}

func TestDoublePawnPushAccessors(t *testing.T) {
	m := NewDoublePawnPush(SqE2, SqE4, WhitePawn, FileE)
	require.True(t, m.IsDoublePawnPush())
	require.Equal(t, FileE, m.EpFile())
	require.False(t, m.IsCapture())
}

func TestEnPassantCaptureAccessors(t *testing.T) {
	m := NewEnPassantCapture(SqE5, SqD6, WhitePawn, SqD5, BlackPawn)
	require.True(t, m.IsEnPassantCapture())
	require.True(t, m.IsCapture())
	require.Equal(t, SqD5, m.CaptureSquare())
	require.Equal(t, SqD6, m.To())
}

func TestPromotionAccessors(t *testing.T) {
	m := NewPromotion(SqA7, SqA8, WhitePawn, WhiteQueen, SqNone, PieceCaptureNone)
	require.True(t, m.IsPromotion())
	require.Equal(t, WhiteQueen, m.DestPiece())
	require.Equal(t, WhitePawn, m.OriginPiece())
}

func TestCastlingAccessors(t *testing.T) {
	m := NewCastling(QuadrantWK, WhiteKing)
	require.True(t, m.IsCastling())
	require.Equal(t, QuadrantWK, m.Quadrant())
	require.Equal(t, SqE1, m.From())
	require.Equal(t, SqG1, m.To())
}

func TestStringUciRoundTrip(t *testing.T) {
	m := NewMove(SqG1, SqF3, WhiteKnight, WhiteKnight, SqNone, PieceCaptureNone)
	require.Equal(t, "g1f3", m.StringUci())

	promo := NewPromotion(SqA7, SqA8, WhitePawn, WhiteQueen, SqNone, PieceCaptureNone)
	require.Equal(t, "a7a8q", promo.StringUci())
}

func TestMoveNoneIsZeroValue(t *testing.T) {
	var m Move
	require.Equal(t, MoveNone, m)
}
