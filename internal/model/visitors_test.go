package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVisitor(t *testing.T) {
	root, err := BuildRoot([]*Object{mod1()})
	require.NoError(t, err)
	module := root.Modules[0]

	var out strings.Builder
	require.NoError(t, Walk(module, &PrintVisitor{Out: &out}))

	assert.Equal(t, `:0 - Module: a
| :1 - Indirection: Union
| :2 - Class: foo
| | :4 - Data: val
| | :5 - Data: alias
| | :6 - Function: __init__
| :8 - Data: saila
`, out.String())
}

func TestPrintVisitor_CustomFormat(t *testing.T) {
	module := mod1()

	var out strings.Builder
	v := &PrintVisitor{Out: &out, Format: "{filename}:{lineno} {name}"}
	require.NoError(t, Walk(module.Find("foo"), v))

	assert.Equal(t, `| test.py:2 foo
| | test.py:4 val
| | test.py:5 alias
| | test.py:6 __init__
`, out.String())
}

func TestPrintVisitor_Colorize(t *testing.T) {
	module := mod1()

	var out strings.Builder
	require.NoError(t, Walk(module, &PrintVisitor{Out: &out, Colorize: true}))

	assert.Contains(t, out.String(), "\x1b[35mModule\x1b[0m")
	assert.Contains(t, out.String(), "\x1b[36mClass\x1b[0m")
}

func TestFilterVisitor(t *testing.T) {
	root, err := BuildRoot([]*Object{mod1()})
	require.NoError(t, err)
	module := root.Modules[0]

	filter := &FilterVisitor{Predicate: func(ob *Object) bool {
		return ob.Kind != KindData
	}}
	require.NoError(t, Walk(module, filter))

	var out strings.Builder
	require.NoError(t, Walk(module, &PrintVisitor{Out: &out}))
	assert.Equal(t, `:0 - Module: a
| :1 - Indirection: Union
| :2 - Class: foo
| | :6 - Function: __init__
`, out.String())

	// Filtered objects leave the index too.
	_, ok := root.Lookup("a.saila")
	assert.False(t, ok)
	_, ok = root.Lookup("a.foo.val")
	assert.False(t, ok)
}
