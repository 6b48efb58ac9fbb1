package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownName = errors.New("unknown name")
	ErrNotMacro    = errors.New("name is not a substitution")
	ErrArity       = errors.New("wrong number of arguments")
	ErrUnbalanced  = errors.New("unbalanced parentheses")
	ErrTooDeep     = errors.New("expansion too deep")
)

// maxDepth bounds nested rescans.
const maxDepth = 64

// ExpandError wraps a failed expansion with the name being expanded.
type ExpandError struct {
	Name   string
	Err    error
	Detail string
}

func (e *ExpandError) Error() string {
	msg := fmt.Sprintf("expand %s: %v", e.Name, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ExpandError) Unwrap() error { return e.Err }

// Expand substitutes one catalogue name applied to args and rescans the
// result until no catalogue substitution remains. Type aliases and constants
// are declarations, not substitutions, and return ErrNotMacro.
func Expand(name string, args ...string) (string, error) {
	e, ok := Lookup(name)
	if !ok {
		return "", &ExpandError{Name: name, Err: ErrUnknownName}
	}
	if !e.Macro() {
		return "", &ExpandError{Name: e.Name, Err: ErrNotMacro, Detail: string(e.Kind)}
	}
	x := expander{}
	if e.Kind == KindObject {
		if len(args) != 0 {
			return "", &ExpandError{Name: e.Name, Err: ErrArity, Detail: fmt.Sprintf("want 0, got %d", len(args))}
		}
		return x.invoke(&e, nil, 0)
	}
	expanded := make([]string, len(args))
	for i, a := range args {
		s, err := x.text(strings.TrimSpace(a), 1)
		if err != nil {
			return "", err
		}
		expanded[i] = s
	}
	return x.invoke(&e, expanded, 0)
}

// ExpandText replays substitution over a fragment of source text. Names
// outside the catalogue, string and character literals, and function-like
// names not followed by an argument list are copied through unchanged.
func ExpandText(src string) (string, error) {
	x := expander{}
	return x.text(src, 0)
}

// Hazard counts how often one parameter appears in a full expansion.
type Hazard struct {
	Param string `json:"param"`
	Count int    `json:"count"`
}

// Repeated reports whether the argument would be evaluated more than once.
func (h Hazard) Repeated() bool { return h.Count > 1 }

// Hazards reports, per parameter, how many times the argument text appears
// after full expansion. A count above one means an argument with side
// effects runs more than once.
func Hazards(name string) ([]Hazard, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, &ExpandError{Name: name, Err: ErrUnknownName}
	}
	if !e.Macro() {
		return nil, &ExpandError{Name: e.Name, Err: ErrNotMacro, Detail: string(e.Kind)}
	}
	if len(e.Params) == 0 {
		return nil, nil
	}
	args := make([]string, len(e.Params))
	for i := range e.Params {
		args[i] = placeholder(i)
	}
	x := expander{}
	out, err := x.invoke(&e, args, 0)
	if err != nil {
		return nil, err
	}
	hz := make([]Hazard, len(e.Params))
	for i, p := range e.Params {
		hz[i] = Hazard{Param: p, Count: strings.Count(out, placeholder(i))}
	}
	return hz, nil
}

func placeholder(i int) string { return fmt.Sprintf("@p%d@", i) }

type expander struct {
	active []string
}

func (x *expander) isActive(name string) bool {
	for _, a := range x.active {
		if a == name {
			return true
		}
	}
	return false
}

// invoke substitutes already-expanded args into e and rescans with e
// disabled.
func (x *expander) invoke(e *Entry, args []string, depth int) (string, error) {
	if depth > maxDepth {
		return "", &ExpandError{Name: e.Name, Err: ErrTooDeep}
	}
	body := e.Expansion
	if e.Kind == KindFunction {
		bind, err := bindArgs(e, args)
		if err != nil {
			return "", err
		}
		body = substitute(body, bind)
	}
	x.active = append(x.active, e.Name)
	defer func() { x.active = x.active[:len(x.active)-1] }()
	return x.text(body, depth+1)
}

func bindArgs(e *Entry, args []string) (map[string]string, error) {
	params := e.Params
	if e.Variadic() {
		fixed := len(params) - 1
		if len(args) < fixed {
			return nil, &ExpandError{Name: e.Name, Err: ErrArity, Detail: fmt.Sprintf("want at least %d, got %d", fixed, len(args))}
		}
		bind := make(map[string]string, len(params))
		for i := 0; i < fixed; i++ {
			bind[params[i]] = args[i]
		}
		bind["__VA_ARGS__"] = strings.Join(args[fixed:], ", ")
		return bind, nil
	}
	if len(args) != len(params) {
		return nil, &ExpandError{Name: e.Name, Err: ErrArity, Detail: fmt.Sprintf("want %d, got %d", len(params), len(args))}
	}
	bind := make(map[string]string, len(params))
	for i, p := range params {
		bind[p] = args[i]
	}
	return bind, nil
}

// substitute replaces whole-identifier parameter references in body.
func substitute(body string, bind map[string]string) string {
	var b strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case isIdentStart(c):
			j := identEnd(body, i)
			if v, ok := bind[body[i:j]]; ok {
				b.WriteString(v)
			} else {
				b.WriteString(body[i:j])
			}
			i = j
		case c == '"' || c == '\'':
			j := literalEnd(body, i)
			b.WriteString(body[i:j])
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func (x *expander) text(src string, depth int) (string, error) {
	if depth > maxDepth {
		return "", &ExpandError{Name: "<text>", Err: ErrTooDeep}
	}
	var b strings.Builder
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			j := literalEnd(src, i)
			b.WriteString(src[i:j])
			i = j
		case isDigit(c):
			// pp-number: 0x1F, 1e10, 0.5f stay whole
			j := i + 1
			for j < len(src) && (isIdentPart(src[j]) || src[j] == '.') {
				j++
			}
			b.WriteString(src[i:j])
			i = j
		case isIdentStart(c):
			j := identEnd(src, i)
			word := src[i:j]
			e, ok := lookupExact(word)
			if !ok || !e.Macro() || x.isActive(word) {
				b.WriteString(word)
				i = j
				continue
			}
			if e.Kind == KindObject {
				out, err := x.invoke(e, nil, depth)
				if err != nil {
					return "", err
				}
				b.WriteString(out)
				i = j
				continue
			}
			k := skipSpace(src, j)
			if k >= len(src) || src[k] != '(' {
				b.WriteString(word)
				i = j
				continue
			}
			raw, end, err := splitArgs(src, k)
			if err != nil {
				return "", &ExpandError{Name: word, Err: err}
			}
			args := make([]string, len(raw))
			for n, a := range raw {
				s, err := x.text(a, depth+1)
				if err != nil {
					return "", err
				}
				args[n] = s
			}
			out, err := x.invoke(e, args, depth)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i = end
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// splitArgs reads a parenthesised argument list starting at src[open] and
// returns the trimmed arguments and the index just past the closing paren.
// "()" yields one empty argument, as in the host preprocessor.
func splitArgs(src string, open int) ([]string, int, error) {
	var args []string
	level := 0
	start := open + 1
	for i := open; i < len(src); {
		switch c := src[i]; c {
		case '"', '\'':
			i = literalEnd(src, i)
			continue
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				args = append(args, strings.TrimSpace(src[start:i]))
				return args, i + 1, nil
			}
		case ',':
			if level == 1 {
				args = append(args, strings.TrimSpace(src[start:i]))
				start = i + 1
			}
		}
		i++
	}
	return nil, 0, ErrUnbalanced
}

func literalEnd(s string, i int) int {
	q := s[i]
	j := i + 1
	for j < len(s) {
		switch s[j] {
		case '\\':
			j += 2
			continue
		case q:
			return j + 1
		}
		j++
	}
	return len(s)
}

func identEnd(s string, i int) int {
	j := i + 1
	for j < len(s) && isIdentPart(s[j]) {
		j++
	}
	return j
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
