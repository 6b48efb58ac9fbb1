// Package catalog is the fixed name catalogue of the rebel vocabulary.
//
// Every exported name appears exactly once, with its textual expansion as
// the host preprocessor would see it and the Go spelling this module gives
// it. Expand and ExpandText replay the textual substitution so the cost of
// the old form (arguments evaluated several times) can be inspected; Go
// callers use the prim, decl, flow and num packages instead.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Group is one of the four cooperating definition groups.
type Group string

const (
	GroupPrimitive   Group = "primitive"
	GroupDeclaration Group = "declaration"
	GroupControl     Group = "control"
	GroupUtility     Group = "utility"
)

// Groups lists the groups in catalogue order.
func Groups() []Group {
	return []Group{GroupPrimitive, GroupDeclaration, GroupControl, GroupUtility}
}

// ParseGroup accepts a group name in any case.
func ParseGroup(s string) (Group, bool) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	return g, slices.Contains(Groups(), g)
}

// Kind says how a name is defined.
type Kind string

const (
	KindType     Kind = "type"     // type alias
	KindConst    Kind = "const"    // named constant
	KindObject   Kind = "object"   // parameterless substitution
	KindFunction Kind = "function" // substitution with parameters
)

// Variadic is the parameter spelling for a trailing variable argument list.
const Variadic = "..."

// Entry is one catalogue name.
type Entry struct {
	Name      string   `json:"name" msgpack:"name" toml:"name"`
	Group     Group    `json:"group" msgpack:"group" toml:"group"`
	Kind      Kind     `json:"kind" msgpack:"kind" toml:"kind"`
	Params    []string `json:"params,omitempty" msgpack:"params,omitempty" toml:"params,omitempty"`
	Expansion string   `json:"expansion" msgpack:"expansion" toml:"expansion"`
	Go        string   `json:"go" msgpack:"go" toml:"go"`
	Note      string   `json:"note,omitempty" msgpack:"note,omitempty" toml:"note,omitempty"`
}

// Signature renders the name with its parameter list, e.g. "MAX(a, b)".
func (e Entry) Signature() string {
	if e.Kind != KindFunction {
		return e.Name
	}
	return e.Name + "(" + strings.Join(e.Params, ", ") + ")"
}

// Variadic reports whether the last parameter is a variable argument list.
func (e Entry) Variadic() bool {
	return len(e.Params) > 0 && e.Params[len(e.Params)-1] == Variadic
}

// Macro reports whether the entry is a textual substitution.
func (e Entry) Macro() bool {
	return e.Kind == KindObject || e.Kind == KindFunction
}

var (
	byName   = make(map[string]int, len(entries))
	byFolded = make(map[string]int, len(entries))
)

func init() {
	fold := cases.Fold()
	for i, e := range entries {
		if _, dup := byName[e.Name]; dup {
			panic("catalog: duplicate entry " + e.Name)
		}
		byName[e.Name] = i
		byFolded[fold.String(e.Name)] = i
	}
}

// All returns every entry in catalogue order.
func All() []Entry {
	return clone(entries)
}

// Len is the number of catalogue names.
func Len() int { return len(entries) }

// ByGroup returns the entries of one group in catalogue order.
func ByGroup(g Group) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Group == g {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

// Lookup finds an entry by name, ignoring case ("align" finds ALIGN).
func Lookup(name string) (Entry, bool) {
	if i, ok := byName[name]; ok {
		return cloneEntry(entries[i]), true
	}
	if i, ok := byFolded[cases.Fold().String(strings.TrimSpace(name))]; ok {
		return cloneEntry(entries[i]), true
	}
	return Entry{}, false
}

// lookupExact is the case-sensitive lookup used during expansion.
func lookupExact(name string) (*Entry, bool) {
	i, ok := byName[name]
	if !ok {
		return nil, false
	}
	return &entries[i], true
}

func clone(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i := range in {
		out[i] = cloneEntry(in[i])
	}
	return out
}

func cloneEntry(e Entry) Entry {
	e.Params = slices.Clone(e.Params)
	return e
}
