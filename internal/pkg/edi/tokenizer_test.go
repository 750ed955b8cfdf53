package edi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("splits segments and elements in order", func(t *testing.T) {
		raw := "ST*835*0001~TRN*1*CHK12345~"

		segments, err := Tokenize(raw, DefaultDelimiters)
		require.NoError(t, err)
		require.Len(t, segments, 2)

		assert.Equal(t, "ST", segments[0].Tag())
		assert.Equal(t, "835", segments[0].Element(1))
		assert.Equal(t, "0001", segments[0].Element(2))
		assert.Equal(t, "TRN", segments[1].Tag())
	})

	t.Run("preserves empty interior elements", func(t *testing.T) {
		segments, err := Tokenize("SVC*HC:H2019*400**0250~", DefaultDelimiters)
		require.NoError(t, err)
		require.Len(t, segments, 1)

		assert.Equal(t, "400", segments[0].Element(2))
		assert.Equal(t, "", segments[0].Element(3))
		assert.Equal(t, "0250", segments[0].Element(4))
	})

	t.Run("drops empty segments from repeated terminators", func(t *testing.T) {
		segments, err := Tokenize("ST*835*0001~~\n~SE*2*0001~", DefaultDelimiters)
		require.NoError(t, err)
		assert.Len(t, segments, 2)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := Tokenize("   \n\t ", DefaultDelimiters)
		assert.Error(t, err)
	})

	t.Run("terminator-only input is an error", func(t *testing.T) {
		_, err := Tokenize("~~~", DefaultDelimiters)
		assert.Error(t, err)
	})
}

func TestSegmentElement(t *testing.T) {
	seg := Segment{Elements: []string{"CLP", "CLM001", "1"}}

	assert.Equal(t, "CLM001", seg.Element(1))
	assert.Equal(t, "", seg.Element(7))
	assert.Equal(t, "", seg.Element(-1))
}

func TestSegmentSubelements(t *testing.T) {
	seg := Segment{Elements: []string{"SVC", "HC:H2019:HM:U1"}}

	parts := seg.Subelements(1, DefaultDelimiters)
	require.Len(t, parts, 4)
	assert.Equal(t, "HC", parts[0])
	assert.Equal(t, "H2019", parts[1])
	assert.Equal(t, "HM", parts[2])
	assert.Equal(t, "U1", parts[3])
}

func TestJoinSegmentsRoundTrip(t *testing.T) {
	raw := "ST*835*0001~BPR*I*1100.00*C*ACH~SE*3*0001~"

	segments, err := Tokenize(raw, DefaultDelimiters)
	require.NoError(t, err)

	assert.Equal(t, raw, JoinSegments(segments, DefaultDelimiters))
}
