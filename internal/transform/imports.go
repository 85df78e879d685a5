package transform

import "github.com/christianalfoni/rask-ui/internal/ast"

// rewriteFrameworkImports redirects imports of FrameworkModule to the
// runtime's compiler entry and returns how many were rewritten.
func rewriteFrameworkImports(m *ast.Module, cfg Config) int {
	compiler := cfg.CompilerSource()
	rewritten := 0
	for _, item := range m.Body {
		imp, ok := item.(*ast.ImportDecl)
		if !ok || imp.Source == nil || imp.Source.Value != FrameworkModule {
			continue
		}
		imp.Source = &ast.Str{Value: compiler}
		rewritten++
	}
	return rewritten
}

// injectRuntimeImports prepends one import of the base classes the walk
// used, skipping any the module already imports from the configured source.
// It returns the inserted declaration, or nil when nothing was needed.
func injectRuntimeImports(m *ast.Module, st *state) *ast.ImportDecl {
	bindings := []struct {
		base  string
		local *ast.Ident
	}{
		{StatefulBase, st.stateful},
		{StatelessBase, st.stateless},
	}

	var specs []ast.ImportSpec
	for _, b := range bindings {
		if b.local == nil || findBaseImport(m, st.source, b.base) != nil {
			continue
		}
		specs = append(specs, &ast.ImportNamed{
			Local:    b.local.Clone(),
			Imported: &ast.Ident{Name: b.base},
		})
	}
	if len(specs) == 0 {
		return nil
	}

	imp := &ast.ImportDecl{
		Specifiers: specs,
		Source:     &ast.Str{Value: st.source},
	}
	m.Body = append([]ast.Item{imp}, m.Body...)
	return imp
}
