package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPrintFormat is the per-object line format used by PrintVisitor
// when none is configured.
const DefaultPrintFormat = ":{lineno} - {kind}: {name}"

var kindColors = map[Kind]string{
	KindModule:      "35", // magenta
	KindClass:       "36", // cyan
	KindFunction:    "33", // yellow
	KindData:        "34", // blue
	KindIndirection: "94", // bright blue
}

// PrintVisitor renders one line per visited object, indented with "| "
// per nesting level. Available format tokens: {kind}, {name}, {docstring},
// {lineno}, {filename}.
type PrintVisitor struct {
	Out      io.Writer
	Format   string
	Colorize bool
}

// Visit implements visitor.Visitor.
func (v *PrintVisitor) Visit(ob *Object) error {
	format := v.Format
	if format == "" {
		format = DefaultPrintFormat
	}
	kind := ob.Kind.String()
	if v.Colorize {
		kind = "\x1b[" + kindColors[ob.Kind] + "m" + kind + "\x1b[0m"
	}
	line := strings.NewReplacer(
		"{kind}", kind,
		"{name}", ob.Name,
		"{docstring}", ob.Docstring,
		"{lineno}", strconv.Itoa(ob.Location.Lineno),
		"{filename}", ob.Location.Filename,
	).Replace(format)

	depth := len(ob.Path()) - 1
	_, err := fmt.Fprintln(v.Out, strings.Repeat("| ", depth)+line)
	return err
}

// Depart implements visitor.Visitor.
func (v *PrintVisitor) Depart(*Object) {}

// FilterVisitor prunes members failing the predicate from every visited
// object, removing them from the root index as well. An object being
// visited has itself already survived filtering.
type FilterVisitor struct {
	Predicate func(*Object) bool
}

// Visit implements visitor.Visitor.
func (v *FilterVisitor) Visit(ob *Object) error {
	if !ob.HasMembers() || len(ob.Members) == 0 {
		return nil
	}
	kept := ob.Members[:0]
	for _, m := range ob.Members {
		if v.Predicate(m) {
			kept = append(kept, m)
			continue
		}
		if ob.root != nil {
			ob.root.Remove(m.FullName().String(), m)
		}
	}
	ob.Members = kept
	return nil
}

// Depart implements visitor.Visitor.
func (v *FilterVisitor) Depart(*Object) {}
