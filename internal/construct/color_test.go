package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Ordinals(t *testing.T) {
	// Ordinals are a contract, not an artifact of declaration order.
	assert.Equal(t, 0, int(Red))
	assert.Equal(t, 1, int(Green))
	assert.Equal(t, 2, int(Blue))
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "blue", Blue.String())
	assert.Equal(t, "Color(7)", Color(7).String())
	assert.Equal(t, "Color(-1)", Color(-1).String())
}

func TestColor_Valid(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Color(3).Valid())
	assert.False(t, Color(-1).Valid())
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseColor_Unknown(t *testing.T) {
	_, err := ParseColor("mauve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")
}
