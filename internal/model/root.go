package model

import (
	"fmt"
	"sort"

	"github.com/conneroisu/dotspec/internal/dottedname"
	"github.com/conneroisu/dotspec/internal/visitor"
)

// Root owns a forest of module trees and an index of every object by full
// name. The index tolerates duplicates (e.g. a property and its setter
// share a name); Lookup returns the preferred entry, LookupAll returns
// every one.
type Root struct {
	Modules []*Object

	index map[string][]*Object
}

// NewRoot creates an empty root.
func NewRoot() *Root {
	return &Root{index: make(map[string][]*Object)}
}

// Add indexes ob under its full name and ties it to this root.
func (r *Root) Add(ob *Object) {
	ob.root = r
	name := ob.FullName().String()
	r.index[name] = append(r.index[name], ob)
}

// Remove drops ob from the index entry for name. Other objects indexed
// under the same name are untouched.
func (r *Root) Remove(name string, ob *Object) {
	entries := r.index[name]
	for i, e := range entries {
		if e == ob {
			r.index[name] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(r.index[name]) == 0 {
		delete(r.index, name)
	}
}

// Lookup returns the object indexed under the given full name. With
// duplicates the most recently indexed object wins.
func (r *Root) Lookup(name string) (*Object, bool) {
	entries := r.index[name]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[len(entries)-1], true
}

// LookupAll returns every object indexed under the given full name.
func (r *Root) LookupAll(name string) []*Object {
	return append([]*Object(nil), r.index[name]...)
}

// AllNames returns the sorted full names of every indexed object.
func (r *Root) AllNames() []string {
	names := make([]string, 0, len(r.index))
	for name := range r.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NestModules reparents a flat list of modules with dotted names ("a",
// "a.b", "a.b.c") into a package hierarchy. Each nested module is renamed
// to its last segment and appended to its parent package's members. The
// parent package of every nested module must be present in the list.
func NestModules(modules []*Object) ([]*Object, error) {
	sorted := append([]*Object(nil), modules...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var roots []*Object
	for _, mod := range sorted {
		name, err := dottedname.New(mod.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid module name %q: %w", mod.Name, err)
		}
		container, ok := name.Container()
		if !ok {
			roots = append(roots, mod)
			continue
		}
		pack := findModule(roots, container.Parts())
		if pack == nil {
			return nil, fmt.Errorf("cannot find parent package %q for module %q", container, mod.Name)
		}
		last, _ := name.Index(-1)
		mod.Name = last
		pack.Members = append(pack.Members, mod)
	}
	for _, r := range roots {
		r.SyncHierarchy()
	}
	return roots, nil
}

func findModule(modules []*Object, path []string) *Object {
	for _, m := range modules {
		if m.Name == path[0] {
			if len(path) > 1 {
				return findModule(m.Members, path[1:])
			}
			return m
		}
	}
	return nil
}

// BuildRoot nests the given modules into a package hierarchy and indexes
// every object of every tree.
func BuildRoot(modules []*Object) (*Root, error) {
	nested, err := NestModules(modules)
	if err != nil {
		return nil, err
	}
	root := NewRoot()
	for _, mod := range nested {
		mod.SyncHierarchy()
		err := Walk(mod, visitor.Func[*Object](func(ob *Object) error {
			root.Add(ob)
			return nil
		}))
		if err != nil {
			return nil, err
		}
		root.Modules = append(root.Modules, mod)
	}
	return root, nil
}

// Walk traverses the subtree rooted at ob calling v.Visit on every object.
func Walk(ob *Object, v visitor.Visitor[*Object]) error {
	return visitor.Walk(ob, v, members)
}

// Walkabout traverses like Walk and additionally calls v.Depart after each
// object's members have been processed.
func Walkabout(ob *Object, v visitor.Visitor[*Object]) error {
	return visitor.Walkabout(ob, v, members)
}

func members(ob *Object) []*Object { return ob.Members }
