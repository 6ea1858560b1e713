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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		got := bits.OnesCount64(uint64(test.value))
		assert.Equalf(t, test.expected, got, "popcount of %d", test.value)
	}
}

func TestSquareBbRoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		bb := sq.Bb()
		assert.Equal(t, 1, bb.PopCount())
		assert.True(t, bb.Has(sq))
	}
}

func TestPushPopSquare(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqE4)
	bb.PushSquare(SqD5)
	require.Equal(t, 2, bb.PopCount())
	require.True(t, bb.Has(SqE4))
	require.True(t, bb.Has(SqD5))

	popped := bb.PopLsb()
	require.Equal(t, 1, bb.PopCount())
	require.False(t, bb.Has(popped))
}

func TestRookAttacksRespectBlockers(t *testing.T) {
	occ := SqE4.Bb() | SqE6.Bb() | SqC4.Bb()
	attacks := GetAttacksBb(Rook, SqE4, occ)

	require.True(t, attacks.Has(SqE5))
	require.True(t, attacks.Has(SqE6), "blocker square itself is attacked")
	require.False(t, attacks.Has(SqE7), "attack does not see past the blocker")
	require.True(t, attacks.Has(SqD4))
	require.True(t, attacks.Has(SqC4), "blocker square itself is attacked")
	require.False(t, attacks.Has(SqB4), "attack does not see past the blocker")
}

func TestBishopAttacksRespectBlockers(t *testing.T) {
	occ := SqE4.Bb() | SqG6.Bb()
	attacks := GetAttacksBb(Bishop, SqE4, occ)

	require.True(t, attacks.Has(SqF5))
	require.True(t, attacks.Has(SqG6), "blocker square itself is attacked")
	require.False(t, attacks.Has(SqH7), "attack does not see past the blocker")
}

func TestQueenAttacksUnionRookAndBishop(t *testing.T) {
	occ := SqE4.Bb()
	rook := GetAttacksBb(Rook, SqE4, occ)
	bishop := GetAttacksBb(Bishop, SqE4, occ)
	queen := GetAttacksBb(Queen, SqE4, occ)
	require.Equal(t, rook|bishop, queen)
}

func TestPawnPushesRequireHomeRankForDoubleStep(t *testing.T) {
	require.True(t, GetPawnPushes(White, SqE2).Has(SqE4), "white pawn on home rank can double-push")
	require.False(t, GetPawnPushes(White, SqE3).Has(SqE5), "white pawn off home rank cannot double-push")
}

func TestCastlingClearMaskMatchesExpectedSquares(t *testing.T) {
	mask := CastlingClearMask(White, true)
	require.True(t, mask.Has(SqF1))
	require.True(t, mask.Has(SqG1))
	require.False(t, mask.Has(SqE1))
}
