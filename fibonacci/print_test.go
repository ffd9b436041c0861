package fibonacci

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, 0, 10, ""))
	assert.Equal(t, "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n", buf.String())
}

func TestPrintLineCount(t *testing.T) {
	for start := uint(0); start <= MaxIndex; start += 7 {
		for end := start + 1; end <= MaxIndex; end += 5 {
			var buf bytes.Buffer
			require.NoError(t, Print(&buf, start, end, ""))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, int(end-start), "start=%d end=%d", start, end)
			for _, l := range lines {
				_, err := strconv.ParseUint(l, 10, 64)
				assert.NoError(t, err, "line %q", l)
			}
		}
	}
}

func TestPrintSeeksToStart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, 5, 8, ""))
	assert.Equal(t, "5\n8\n13\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, 47, 48, ""))
	assert.Equal(t, "2971215073\n", buf.String())
}

func TestPrintEmptyRange(t *testing.T) {
	cases := [][2]uint{{0, 0}, {48, 48}, {10, 3}, {1, 0}}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, c[0], c[1], ""))
		assert.Empty(t, buf.String(), "start=%d end=%d", c[0], c[1])
	}
}

func TestPrintDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Print(&a, 3, 30, "%d,"))
	require.NoError(t, Print(&b, 3, 30, "%d,"))
	assert.Equal(t, a.String(), b.String())
}

func TestPrintFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, 6, 9, "[%4x]"))
	assert.Equal(t, "[   8][   d][  15]", buf.String())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrintWriteError(t *testing.T) {
	err := Print(failWriter{}, 0, 10, "")
	assert.True(t, errors.Is(err, errWrite))
}

func TestCheckFormat(t *testing.T) {
	good := []string{"%d\n", "%v", "%08b ", "100%% %x", "%+5d", "%U", "%-3o|"}
	for _, f := range good {
		assert.NoError(t, CheckFormat(f), "CheckFormat(%q)", f)
	}

	bad := []string{"", "no verb", "%d %d", "%s", "%f\n", "%", "%5", "%%", "%[1]d"}
	for _, f := range bad {
		err := CheckFormat(f)
		assert.True(t, errors.Is(err, ErrFormat), "CheckFormat(%q) = %v", f, err)
	}
}

func ExamplePrint() {
	var buf bytes.Buffer
	Print(&buf, 0, 10, "%d ")
	fmt.Println(strings.TrimSpace(buf.String()))
	// Output: 0 1 1 2 3 5 8 13 21 34
}
