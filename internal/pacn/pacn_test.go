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

package pacn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BlakeSHerrera/sublime/internal/position"
)

func TestParseQuietMove(t *testing.T) {
	pos := position.NewPosition()
	m, err := Parse(pos, "e2e4")
	require.NoError(t, err)
	require.Equal(t, "e2e4", String(m))
}

func TestParsePromotion(t *testing.T) {
	pos, err := position.NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	require.NoError(t, err)
	m, err := Parse(pos, "a7a8q")
	require.NoError(t, err)
	require.Equal(t, "a7a8q", String(m))
}

func TestParseRejectsMalformedString(t *testing.T) {
	pos := position.NewPosition()
	_, err := Parse(pos, "e2")
	require.Error(t, err)
}

func TestParseRejectsBadCoordinate(t *testing.T) {
	pos := position.NewPosition()
	_, err := Parse(pos, "z9e4")
	require.Error(t, err)
}

func TestParseRejectsIllegalMove(t *testing.T) {
	pos := position.NewPosition()
	_, err := Parse(pos, "e2e5")
	require.Error(t, err)
}

func TestParseRejectsMissingPromotionLetter(t *testing.T) {
	pos, err := position.NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	require.NoError(t, err)
	_, err = Parse(pos, "a7a8")
	require.Error(t, err, "a pawn reaching the last rank must specify a promotion piece")
}
