package depcheck_test

import (
	"errors"
	"testing"

	"github.com/refaktor/modinfogen/depcheck"
	"github.com/stretchr/testify/require"
)

func TestValidateSatisfied(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("x", []string{` "y"`}))
	require.NoError(reg.Add("y", nil))
	require.NoError(reg.Validate())
	require.Empty(reg.Unresolved())
	require.Equal(2, reg.Len())
	require.Equal([]string{"x", "y"}, reg.Names())
}

func TestValidateUnsatisfied(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("x", []string{` "z"`, ` "y"`}))
	require.NoError(reg.Add("y", []string{` "w"`, ` "z"`}))

	err := reg.Validate()
	var unsat *depcheck.UnsatisfiedError
	require.True(errors.As(err, &unsat))
	require.Equal([]string{"w", "z"}, unsat.Names)
	require.Equal([]string{
		"Dependency w cannot be satisfied",
		"Dependency z cannot be satisfied",
	}, unsat.Lines())
	require.EqualError(err, "dependencies w, z cannot be satisfied")

	single := &depcheck.UnsatisfiedError{Names: []string{"z"}}
	require.EqualError(single, "dependency z cannot be satisfied")
}

func TestDepsTrimmed(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("a", []string{` "b"`, `c`, ` "b"`}))
	require.Equal([]string{"b", "c", "b"}, reg.Deps("a"))
	require.Nil(reg.Deps("b"))
}

func TestDuplicate(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("a", nil))
	err := reg.Add("a", []string{` "b"`})
	var dup *depcheck.DuplicateError
	require.True(errors.As(err, &dup))
	require.Equal("a", dup.Name)
	require.Equal(1, reg.Len())
	require.Nil(reg.Deps("a"))
}

func TestAddCopiesDeps(t *testing.T) {
	require := require.New(t)

	deps := []string{` "b"`}
	var reg depcheck.Registry
	require.NoError(reg.Add("a", deps))
	deps[0] = ` "c"`
	require.Equal([]string{"b"}, reg.Deps("a"))
}

func TestClosure(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("a", []string{` "b"`, ` "c"`}))
	require.NoError(reg.Add("b", []string{` "d"`, ` "a"`}))
	require.NoError(reg.Add("c", []string{` "missing"`}))
	require.NoError(reg.Add("d", nil))

	require.Equal([]string{"b", "c", "d", "missing"}, reg.Closure("a"))
	require.Equal([]string{"d", "a", "c", "missing"}, reg.Closure("b"))
	require.Empty(reg.Closure("d"))
}

func TestReachable(t *testing.T) {
	require := require.New(t)

	edges := map[int][]int{1: {2, 3}, 2: {3}, 3: {1}}
	got := depcheck.Reachable([]int{1}, func(n int) []int { return edges[n] })
	require.Equal([]int{1, 2, 3}, got)
	require.Empty(depcheck.Reachable(nil, func(n int) []int { return edges[n] }))
}

func TestDOT(t *testing.T) {
	require := require.New(t)

	var reg depcheck.Registry
	require.NoError(reg.Add("ui-opengl", nil))
	require.NoError(reg.Add("hw-display-virtio-gpu-gl", []string{` "ui-opengl"`, ` "hw-display-virtio-gpu"`}))

	require.Equal(`digraph qemu_modinfo {
  node [shape=box]
  0 [label="ui-opengl"]
  1 [label="hw-display-virtio-gpu-gl"]
  2 [label="hw-display-virtio-gpu" style=dashed color=red]
  1 -> {0 2}
}
`, string(reg.DOT("QemuModinfo")))
}

func TestDOTCodeDropsUnknownNodes(t *testing.T) {
	require := require.New(t)

	edges := map[string][]string{"a": {"b", "c"}}
	got := depcheck.DOTCode([]string{"a", "b"}, func(s string) []string { return edges[s] }, "g", "", func(string) string { return "" })
	require.Equal("digraph g {\n  0\n  1\n  0 -> {1}\n}\n", string(got))
	require.Equal([]string{"b", "c"}, edges["a"])
}
