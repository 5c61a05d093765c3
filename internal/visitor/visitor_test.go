package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	name     string
	children []*node
}

func tree() *node {
	return &node{name: "root", children: []*node{
		{name: "a", children: []*node{
			{name: "a1"},
			{name: "a2"},
		}},
		{name: "b"},
	}}
}

func kids(n *node) []*node { return n.children }

func TestWalk_VisitsDepthFirst(t *testing.T) {
	var order []string
	err := Walk(tree(), Func[*node](func(n *node) error {
		order = append(order, n.name)
		return nil
	}), kids)

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, order)
}

func TestWalk_SkipChildren(t *testing.T) {
	var order []string
	err := Walk(tree(), Func[*node](func(n *node) error {
		order = append(order, n.name)
		if n.name == "a" {
			return ErrSkipChildren
		}
		return nil
	}), kids)

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "b"}, order)
}

func TestWalk_Stop(t *testing.T) {
	var order []string
	err := Walk(tree(), Func[*node](func(n *node) error {
		order = append(order, n.name)
		if n.name == "a1" {
			return ErrStopWalk
		}
		return nil
	}), kids)

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "a1"}, order)
}

func TestWalk_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Walk(tree(), Func[*node](func(n *node) error {
		if n.name == "a2" {
			return boom
		}
		return nil
	}), kids)

	assert.ErrorIs(t, err, boom)
}

type recorder struct {
	visits  []string
	departs []string
}

func (r *recorder) Visit(n *node) error {
	r.visits = append(r.visits, n.name)
	return nil
}

func (r *recorder) Depart(n *node) {
	r.departs = append(r.departs, n.name)
}

func TestWalkabout_DepartsAfterSubtree(t *testing.T) {
	rec := &recorder{}
	err := Walkabout(tree(), rec, kids)

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, rec.visits)
	assert.Equal(t, []string{"a1", "a2", "a", "b", "root"}, rec.departs)
}
