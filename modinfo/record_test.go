package modinfo_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/refaktor/modinfogen/modinfo"
	"github.com/stretchr/testify/require"
)

func buildString(t *testing.T, src string) (*modinfo.Record, error) {
	t.Helper()
	return modinfo.Build("test", "test.modinfo", strings.NewReader(src))
}

func TestBuildAccumulates(t *testing.T) {
	require := require.New(t)

	rec, err := buildString(t, `
MODINFO_START obj "a" MODINFO_END
MODINFO_START obj "b" MODINFO_END
MODINFO_START obj "c" MODINFO_END
MODINFO_START obj "a" MODINFO_END
MODINFO_START arch "x86_64" MODINFO_END
MODINFO_START arch "aarch64" MODINFO_END
MODINFO_START dep "y" MODINFO_END
`)
	require.NoError(err)
	require.Equal(&modinfo.Record{
		Name:    "test",
		Arch:    ` "aarch64"`,
		Objects: []string{` "a"`, ` "b"`, ` "c"`, ` "a"`},
		Deps:    []string{` "y"`},
	}, rec)
	require.Nil(rec.Opts)
	require.Equal([]string{` "aarch64"`}, rec.Values(modinfo.KindArch))
	require.Equal(rec.Objects, rec.Values(modinfo.KindObj))
	require.Empty(rec.Values(modinfo.KindOpts))
}

func TestBuildMultiLineMatchesSingleLine(t *testing.T) {
	require := require.New(t)

	single, err := buildString(t, `MODINFO_START dep "a" "b" MODINFO_END`+"\n")
	require.NoError(err)
	multi, err := buildString(t, "MODINFO_START dep \"a\"\n\"b\"\nMODINFO_END\n")
	require.NoError(err)
	require.Equal(single, multi)
}

func TestBuildNoTrailingNewline(t *testing.T) {
	require := require.New(t)

	rec, err := buildString(t, `MODINFO_START opts "-x" MODINFO_END`)
	require.NoError(err)
	require.Equal([]string{` "-x"`}, rec.Opts)

	rec, err = buildString(t, `MODINFO_START opts "-y"`)
	require.NoError(err)
	require.Equal([]string{` "-y"`}, rec.Opts)
}

func TestBuildUnknownKind(t *testing.T) {
	require := require.New(t)

	_, err := buildString(t, "MODINFO_START obj \"a\" MODINFO_END\nMODINFO_START bogus v MODINFO_END\n")
	var ukErr *modinfo.UnknownKindError
	require.True(errors.As(err, &ukErr))
	require.Equal("bogus", ukErr.Kind)
	require.Equal(2, ukErr.Line)
	require.EqualError(err, "test.modinfo:2: unknown: bogus")
}

func TestBuildEmptyName(t *testing.T) {
	_, err := modinfo.Build("", "x.modinfo", strings.NewReader(""))
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	require := require.New(t)

	for _, k := range []modinfo.Kind{modinfo.KindArch, modinfo.KindObj, modinfo.KindDep, modinfo.KindOpts} {
		got, err := modinfo.ParseKind(k.String())
		require.NoError(err)
		require.Equal(k, got)
	}
	_, err := modinfo.ParseKind("kconfig")
	require.Error(err)
	_, err = modinfo.ParseKind("")
	require.Error(err)

	require.False(modinfo.KindArch.Repeatable())
	require.True(modinfo.KindObj.Repeatable())
	require.True(modinfo.KindDep.Repeatable())
	require.True(modinfo.KindOpts.Repeatable())
}

func TestBuildTestdata(t *testing.T) {
	require := require.New(t)

	f, err := os.Open(filepath.Join("testdata", "hw-display-virtio-gpu-gl.modinfo"))
	require.NoError(err)
	defer f.Close()

	rec, err := modinfo.Build("hw-display-virtio-gpu-gl", f.Name(), f)
	require.NoError(err)
	require.Equal(&modinfo.Record{
		Name:    "hw-display-virtio-gpu-gl",
		Objects: []string{` "virtio-gpu-gl-device"`, ` "vhost-user-gpu"`},
		Deps:    []string{` "hw-display-virtio-gpu"`, ` "ui-opengl"`},
	}, rec)
}
