package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/dotspec/internal/model"
)

const sampleSpec = `
name: a
location: {filename: test.py, lineno: 0}
members:
  - kind: indirection
    name: Union
    location: {filename: test.py, lineno: 1}
    target: typing.Union
  - kind: class
    name: foo
    location: {filename: test.py, lineno: 2}
    docstring: This is class foo.
    members:
      - kind: data
        name: val
        location: {filename: test.py, lineno: 4}
        datatype: Union[int, float]
        value: "42"
      - kind: function
        name: __init__
        location: {filename: test.py, lineno: 6}
        args:
          - name: self
  - kind: data
    name: saila
    location: {filename: test.py, lineno: 8}
    value: foo.alias
`

func TestLoad(t *testing.T) {
	mod, err := Load(strings.NewReader(sampleSpec))
	require.NoError(t, err)

	assert.Equal(t, model.KindModule, mod.Kind)
	assert.Equal(t, "a", mod.Name)
	require.Len(t, mod.Members, 3)

	union := mod.Find("Union")
	require.NotNil(t, union)
	assert.Equal(t, model.KindIndirection, union.Kind)
	assert.Equal(t, "typing.Union", union.Target)
	assert.Same(t, mod, union.Parent(), "hierarchy is synced")

	foo := mod.Find("foo")
	require.NotNil(t, foo)
	assert.Equal(t, "This is class foo.", foo.Docstring)

	val := foo.Find("val")
	require.NotNil(t, val)
	assert.Equal(t, "42", val.Value)
	assert.Equal(t, 4, val.Location.Lineno)

	init := foo.Find("__init__")
	require.NotNil(t, init)
	require.Len(t, init.Args, 1)
	assert.Equal(t, "self", init.Args[0].Name)
}

func TestLoad_BadKind(t *testing.T) {
	_, err := Load(strings.NewReader("name: a\nmembers:\n  - kind: gizmo\n    name: g\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gizmo")
}

func TestLoad_MissingName(t *testing.T) {
	_, err := Load(strings.NewReader("name: a\nmembers:\n  - kind: data\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestLoad_TopLevelMustBeModule(t *testing.T) {
	_, err := Load(strings.NewReader("kind: class\nname: foo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a module")
}

func TestLoad_LeafWithMembers(t *testing.T) {
	doc := "name: a\nmembers:\n  - kind: function\n    name: f\n    members:\n      - kind: data\n        name: x\n"
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have members")
}

func TestLoadFile_AttachesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\nmembers:\n  - kind: gizmo\n    name: g\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yml")
}

func TestLoadDir_FiltersAndExcludes(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("a.yml", "name: a\n")
	write("b.yaml", "name: b\n")
	write("skip.yml", "name: skipped\n")
	write("notes.txt", "not a spec")

	mods, err := LoadDir(dir, []string{"skip.yml"})
	require.NoError(t, err)
	require.Len(t, mods, 2)

	names := []string{mods[0].Name, mods[1].Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestLoadPaths_BuildsIndexedRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg.yml"), []byte("name: pkg\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub.yml"), []byte("name: pkg.sub\n"), 0o644))

	root, err := LoadPaths([]string{dir}, nil)
	require.NoError(t, err)

	sub, ok := root.Lookup("pkg.sub")
	require.True(t, ok)
	assert.Equal(t, "sub", sub.Name)
	require.Len(t, root.Modules, 1)
}

func TestLoadPaths_NoSpecs(t *testing.T) {
	_, err := LoadPaths([]string{t.TempDir()}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no spec files")
}
