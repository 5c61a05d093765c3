package model

import (
	"github.com/conneroisu/dotspec/internal/dottedname"
)

// ExpandName expands a possibly relative dotted name into a fully
// qualified one, resolved from this object's scope. The first segment is
// looked up in o and its enclosing scopes; indirections and aliases are
// followed, remaining segments are resolved member by member where the
// tree knows them. Names the tree cannot resolve expand to themselves.
func (o *Object) ExpandName(name string) string {
	return o.expandName(name, make(map[*Object]bool))
}

// ResolveName returns the object the given name refers to from this
// object's scope, or nil when it expands to something outside the tree.
func (o *Object) ResolveName(name string) *Object {
	if o.root == nil {
		return nil
	}
	if ob, ok := o.root.Lookup(o.ExpandName(name)); ok {
		return ob
	}
	return nil
}

func (o *Object) expandName(name string, seen map[*Object]bool) string {
	dn, err := dottedname.NewLax(name)
	if err != nil {
		return name
	}
	parts := dn.Parts()

	var obj *Object
	for scope := o; scope != nil; scope = scope.parent {
		if m := scope.Find(parts[0]); m != nil {
			obj = m
			break
		}
	}
	if obj == nil {
		return name
	}

	full := obj.expandSelf(seen)
	for _, seg := range parts[1:] {
		if member := o.memberOf(full, seg); member != nil {
			full = member.expandSelf(seen)
			continue
		}
		full = full + "." + seg
	}
	return full
}

// memberOf finds the member seg of the object indexed under full, when
// that object exists in the tree.
func (o *Object) memberOf(full, seg string) *Object {
	if o.root == nil {
		return nil
	}
	ob, ok := o.root.Lookup(full)
	if !ok {
		return nil
	}
	return ob.Find(seg)
}

// expandSelf returns the fully qualified name of o, following one level
// of indirection or aliasing. The seen set breaks alias cycles.
func (o *Object) expandSelf(seen map[*Object]bool) string {
	if seen[o] {
		return o.FullName().String()
	}
	seen[o] = true

	switch {
	case o.Kind == KindIndirection && o.parent != nil:
		return o.parent.expandName(o.Target, seen)
	case o.IsAlias() && o.parent != nil:
		return o.parent.expandName(o.Value, seen)
	}
	return o.FullName().String()
}
