package showcase

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"showcase operands", 1, 2, 3},
		{"zero identity", 0, 42, 42},
		{"both zero", 0, 0, 0},
		{"negatives", -5, -7, -12},
		{"mixed signs", -10, 3, -7},
		{"cancellation", 2147483647, -2147483647, 0},
		{"near max", math.MaxInt - 1, 1, math.MaxInt},
		{"near min", math.MinInt + 1, -1, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	pairs := [][2]int{{1, 2}, {-3, 9}, {0, math.MaxInt}, {-100, -200}}
	for _, p := range pairs {
		assert.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]))
	}
}

// Overflow wraps per Go's defined two's-complement semantics. The program
// never reaches these magnitudes; the test pins the behavior down so a
// future change of integer width is noticed.
func TestAdd_OverflowWraps(t *testing.T) {
	assert.Equal(t, math.MinInt, Add(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, Add(math.MinInt, -1))
}

func TestDemonstrate(t *testing.T) {
	var buf bytes.Buffer
	err := Demonstrate(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Result: 3\n", buf.String())
}

func TestDemonstrate_WriterError(t *testing.T) {
	err := Demonstrate(failingWriter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSink))
}

func TestPrivateNote(t *testing.T) {
	var buf bytes.Buffer
	err := privateNote(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Private\n", buf.String())
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSink
}
