package transform

import (
	"strconv"
	"strings"

	"github.com/christianalfoni/rask-ui/internal/analyse"
	"github.com/christianalfoni/rask-ui/internal/ast"
)

// Runtime base classes that rewritten components extend.
const (
	StatefulBase  = "RaskStatefulComponent"
	StatelessBase = "RaskStatelessComponent"
)

// state is the per-module transform state. It holds at most one binding per
// base class; a binding is created on first use and shared by every
// component of that kind in the module.
type state struct {
	module *ast.Module
	source string

	stateful  *ast.Ident
	stateless *ast.Ident

	// names used anywhere in the module, collected on first allocation
	names map[string]bool
	raw   []string
}

func newState(m *ast.Module, source string) *state {
	return &state{module: m, source: source}
}

// baseBinding returns the identifier to extend for the given classification.
// Each call returns a fresh node referring to the same binding.
func (s *state) baseBinding(kind analyse.Classification) *ast.Ident {
	slot, base := &s.stateless, StatelessBase
	if kind == analyse.Stateful {
		slot, base = &s.stateful, StatefulBase
	}
	if *slot == nil {
		*slot = s.bindingFor(base)
	}
	return (*slot).Clone()
}

// bindingFor reuses the local name of an existing import of base from the
// configured source, or allocates a private name for a new import.
func (s *state) bindingFor(base string) *ast.Ident {
	if spec := findBaseImport(s.module, s.source, base); spec != nil {
		return spec.Local.Clone()
	}
	return &ast.Ident{Name: s.privateName(base)}
}

// privateName returns "_"+base, suffixed with a counter if the module
// already mentions that name. The result only depends on module content.
func (s *state) privateName(base string) string {
	if s.names == nil {
		s.collectNames()
	}
	candidate := "_" + base
	for n := 1; s.taken(candidate); n++ {
		candidate = "_" + base + strconv.Itoa(n)
	}
	s.names[candidate] = true
	return candidate
}

func (s *state) taken(name string) bool {
	if s.names[name] {
		return true
	}
	for _, text := range s.raw {
		if strings.Contains(text, name) {
			return true
		}
	}
	return false
}

func (s *state) collectNames() {
	s.names = make(map[string]bool)
	ast.Inspect(s.module, func(n any) bool {
		switch n := n.(type) {
		case *ast.Ident:
			s.names[n.Name] = true
		case *ast.BindingIdent:
			s.names[n.Name] = true
		case *ast.Raw:
			s.raw = append(s.raw, n.Text)
		case *ast.RawPat:
			s.raw = append(s.raw, n.Text)
		case *ast.RawStmt:
			s.raw = append(s.raw, n.Text)
		case *ast.RawMember:
			s.raw = append(s.raw, n.Text)
		}
		return true
	})
}

// findBaseImport returns the value import specifier that binds base from
// source, matching the imported name or, for unaliased specifiers, the
// local name.
func findBaseImport(m *ast.Module, source, base string) *ast.ImportNamed {
	for _, item := range m.Body {
		imp, ok := item.(*ast.ImportDecl)
		if !ok || imp.TypeOnly || imp.Source == nil || imp.Source.Value != source {
			continue
		}
		for _, spec := range imp.Specifiers {
			named, ok := spec.(*ast.ImportNamed)
			if !ok || named.TypeOnly || named.Local == nil {
				continue
			}
			if named.Imported != nil {
				if named.Imported.Name == base {
					return named
				}
			} else if named.Local.Name == base {
				return named
			}
		}
	}
	return nil
}
