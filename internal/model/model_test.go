package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mod1 builds a module with an import indirection, a class with data and a
// constructor, and a module-level alias chain.
func mod1() *Object {
	module := &Object{Kind: KindModule, Name: "a", Location: Location{Filename: "test.py", Lineno: 0}, Members: []*Object{
		{Kind: KindIndirection, Name: "Union", Location: Location{Filename: "test.py", Lineno: 1}, Target: "typing.Union"},
		{Kind: KindClass, Name: "foo", Location: Location{Filename: "test.py", Lineno: 2}, Docstring: "This is class foo.", Members: []*Object{
			{Kind: KindData, Name: "val", Location: Location{Filename: "test.py", Lineno: 4}, Datatype: "Union[int, float]", Value: "42"},
			{Kind: KindData, Name: "alias", Location: Location{Filename: "test.py", Lineno: 5}, Value: "val"},
			{Kind: KindFunction, Name: "__init__", Location: Location{Filename: "test.py", Lineno: 6}, Args: []Argument{{Name: "self"}}},
		}},
		{Kind: KindData, Name: "saila", Location: Location{Filename: "test.py", Lineno: 8}, Value: "foo.alias"},
	}}
	module.SyncHierarchy()
	return module
}

func TestSyncHierarchy(t *testing.T) {
	module := mod1()

	foo := module.Find("foo")
	require.NotNil(t, foo)
	assert.Same(t, module, foo.Parent())

	val := foo.Find("val")
	require.NotNil(t, val)
	assert.Same(t, foo, val.Parent())
	assert.Same(t, module, val.Module())
}

func TestFullName(t *testing.T) {
	module := mod1()

	assert.Equal(t, "a", module.FullName().String())
	assert.Equal(t, "a.foo", module.Find("foo").FullName().String())
	assert.Equal(t, "a.foo.val", module.Find("foo").Find("val").FullName().String())
}

func TestIsAlias(t *testing.T) {
	module := mod1()
	foo := module.Find("foo")

	assert.False(t, foo.Find("val").IsAlias(), "literal value is not an alias")
	assert.True(t, foo.Find("alias").IsAlias())
	assert.True(t, module.Find("saila").IsAlias())
	assert.False(t, module.Find("Union").IsAlias(), "indirections are not data aliases")
}

func TestBuildRoot_IndexesEveryObject(t *testing.T) {
	root, err := BuildRoot([]*Object{mod1()})
	require.NoError(t, err)

	for name, kind := range map[string]Kind{
		"a":              KindModule,
		"a.Union":        KindIndirection,
		"a.foo":          KindClass,
		"a.foo.val":      KindData,
		"a.foo.__init__": KindFunction,
		"a.saila":        KindData,
	} {
		ob, ok := root.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, kind, ob.Kind, name)
		assert.Same(t, root, ob.Root(), name)
	}
}

func TestNestModules(t *testing.T) {
	pkg := &Object{Kind: KindModule, Name: "pkg"}
	sub := &Object{Kind: KindModule, Name: "pkg.sub"}
	leaf := &Object{Kind: KindModule, Name: "pkg.sub.leaf"}
	other := &Object{Kind: KindModule, Name: "other"}

	roots, err := NestModules([]*Object{leaf, other, pkg, sub})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	assert.Equal(t, "other", roots[0].Name)
	assert.Equal(t, "pkg", roots[1].Name)

	nestedSub := roots[1].Find("sub")
	require.NotNil(t, nestedSub)
	assert.Equal(t, "sub", nestedSub.Name)

	nestedLeaf := nestedSub.Find("leaf")
	require.NotNil(t, nestedLeaf)
	assert.Equal(t, "pkg.sub.leaf", nestedLeaf.FullName().String())
}

func TestNestModules_MissingParent(t *testing.T) {
	orphan := &Object{Kind: KindModule, Name: "pkg.sub"}

	_, err := NestModules([]*Object{orphan})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pkg")
}

func TestRoot_DuplicateNames(t *testing.T) {
	root := NewRoot()
	first := &Object{Kind: KindFunction, Name: "prop"}
	second := &Object{Kind: KindFunction, Name: "prop"}
	root.Add(first)
	root.Add(second)

	got, ok := root.Lookup("prop")
	require.True(t, ok)
	assert.Same(t, second, got, "latest entry wins")
	assert.Len(t, root.LookupAll("prop"), 2)

	root.Remove("prop", second)
	got, ok = root.Lookup("prop")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestRoot_AllNames(t *testing.T) {
	root, err := BuildRoot([]*Object{mod1()})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a", "a.Union", "a.foo", "a.foo.__init__", "a.foo.alias", "a.foo.val", "a.saila",
	}, root.AllNames())
}
