// Package model defines the documentation tree dotspec operates on: API
// objects (modules, classes, functions, data, indirections) addressed by
// dotted names, plus a root index and scope-aware name resolution.
package model

import (
	"github.com/conneroisu/dotspec/internal/dottedname"
)

// Kind discriminates the object variants of the tree.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindFunction
	KindData
	KindIndirection
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindClass:
		return "Class"
	case KindFunction:
		return "Function"
	case KindData:
		return "Data"
	case KindIndirection:
		return "Indirection"
	default:
		return "Unknown"
	}
}

// Location points at the source of an object.
type Location struct {
	Filename string
	Lineno   int
}

// Argument describes one function parameter.
type Argument struct {
	Name         string
	Datatype     string
	DefaultValue string
}

// Object is a node of the documentation tree. Kind selects which of the
// variant fields are meaningful: Members for modules and classes, Target
// for indirections, Value and Datatype for data, Args/ReturnType/Modifiers
// for functions, Bases/Metaclass for classes.
type Object struct {
	Kind      Kind
	Name      string
	Location  Location
	Docstring string
	Members   []*Object

	// Data
	Datatype string
	Value    string

	// Indirection
	Target string

	// Function
	Args       []Argument
	ReturnType string
	Modifiers  []string

	// Class
	Bases     []string
	Metaclass string

	parent *Object
	root   *Root
}

// HasMembers reports whether the object kind can contain other objects.
func (o *Object) HasMembers() bool {
	return o.Kind == KindModule || o.Kind == KindClass
}

// Parent returns the enclosing object, nil for a root module.
func (o *Object) Parent() *Object { return o.parent }

// Root returns the tree root the object belongs to, nil before indexing.
func (o *Object) Root() *Root { return o.root }

// SyncHierarchy rewires parent pointers for the whole subtree. Call it
// after assembling or reshaping Members by hand.
func (o *Object) SyncHierarchy() {
	for _, m := range o.Members {
		m.parent = o
		m.SyncHierarchy()
	}
}

// Path returns the chain of objects from the root module down to o.
func (o *Object) Path() []*Object {
	var path []*Object
	for ob := o; ob != nil; ob = ob.parent {
		path = append(path, ob)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FullName returns the dotted name of the object's path.
func (o *Object) FullName() dottedname.DottedName {
	parts := make([]any, 0, 4)
	for _, ob := range o.Path() {
		parts = append(parts, ob.Name)
	}
	dn, err := dottedname.NewLax(parts...)
	if err != nil {
		// Objects always carry a name, so the only failure mode is a
		// nameless node; surface it as the unknown sentinel.
		return dottedname.MustNew(dottedname.Unknown)
	}
	return dn
}

// Module returns the nearest enclosing module, including o itself.
func (o *Object) Module() *Object {
	for ob := o; ob != nil; ob = ob.parent {
		if ob.Kind == KindModule {
			return ob
		}
	}
	return nil
}

// Find returns the direct member with the given name, or nil.
func (o *Object) Find(name string) *Object {
	for _, m := range o.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// IsAlias reports whether a data object merely re-exports another object:
// its value parses as a strict dotted name rather than a literal.
func (o *Object) IsAlias() bool {
	if o.Kind != KindData || o.Value == "" {
		return false
	}
	_, err := dottedname.New(o.Value)
	return err == nil
}
