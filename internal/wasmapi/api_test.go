package wasmapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christianalfoni/rask-ui/internal/ast"
)

func labelModule(t *testing.T) string {
	t.Helper()
	m := &ast.Module{Body: []ast.Item{
		&ast.VarDecl{Kind: "const", Decls: []*ast.Declarator{{
			Name: &ast.BindingIdent{Name: "Label"},
			Init: &ast.Arrow{Expr: &ast.Call{Callee: &ast.Ident{Name: "createVNode"}}},
		}}},
	}}
	data, err := ast.MarshalModule(m)
	require.NoError(t, err)
	return string(data)
}

func TestTransformModule(t *testing.T) {
	api := New(nil)

	result, err := api.TransformModule(labelModule(t), `{"importSource":"custom-ui"}`)
	require.NoError(t, err)
	assert.Equal(t, []Component{{Name: "Label", Kind: "stateless"}}, result.Components)

	m, err := ast.UnmarshalModule([]byte(result.Module))
	require.NoError(t, err)
	require.Len(t, m.Body, 2)
	assert.Equal(t, "custom-ui", m.Body[0].(*ast.ImportDecl).Source.Value)
}

func TestTransformModuleBadConfig(t *testing.T) {
	result, err := New(nil).TransformModule(labelModule(t), `{"importSource":`)
	require.NoError(t, err)

	m, err := ast.UnmarshalModule([]byte(result.Module))
	require.NoError(t, err)
	assert.Equal(t, "rask-ui", m.Body[0].(*ast.ImportDecl).Source.Value)
}

func TestTransformModuleBadModule(t *testing.T) {
	_, err := New(nil).TransformModule(`{"type":"Program"}`, "")
	assert.ErrorIs(t, err, ast.ErrUnknownNode)
}
