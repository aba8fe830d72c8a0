package textutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndentString(t *testing.T) {
	require := require.New(t)

	require.Equal(`  Hello
  World`,
		IndentString(`Hello
World`, "  ", 1),
	)

	require.Equal(`  Hello
  World
`,
		IndentString(`Hello
World
`, "  ", 1),
	)

	require.Equal(`  Hello

  World
`,
		IndentString(`Hello
  
World
`, "  ", 1),
	)

	require.Equal("\t\tx\n", IndentString("x\n", "\t", 2))
}

func TestIndentStringBlankLines(t *testing.T) {
	require := require.New(t)

	got := IndentString("a\n \t \n\nb\n   ", "  ", 1)
	require.Equal("  a\n\n\n  b\n", got)
	require.NotContains(got, "  \n")
}

func TestTrimRef(t *testing.T) {
	require := require.New(t)

	require.Equal("hw-display-virtio-gpu", TrimRef(` "hw-display-virtio-gpu"`))
	require.Equal("ui-opengl", TrimRef("ui-opengl"))
	require.Equal("a b", TrimRef(` "a b" `))
	require.Equal("", TrimRef(` ""`))
	require.Equal(`a"b`, TrimRef(`"a"b"`))
}
