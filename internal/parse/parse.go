// Package parse reads JavaScript source into the compiler's syntax tree
// using tree-sitter.
//
// Input is expected to be plain JavaScript, after JSX has been lowered to
// createVNode calls. Forms the tree does not model are kept as raw text
// nodes so they print back unchanged. Comments are dropped.
package parse

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/christianalfoni/rask-ui/internal/ast"
)

// ErrSyntax is returned for source that does not parse cleanly.
var ErrSyntax = errors.New("syntax error")

// ErrInvalidContent is returned for source that is not valid UTF-8.
var ErrInvalidContent = errors.New("source is not valid UTF-8")

// Parse parses source into a module. fileName is only used in error
// messages. Each call uses its own tree-sitter parser, so Parse is safe for
// concurrent use.
func Parse(ctx context.Context, fileName string, source []byte) (*ast.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled: %w", fileName, err)
	}
	if !utf8.Valid(source) {
		return nil, fmt.Errorf("%s: %w", fileName, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse of %s failed: %w", fileName, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(fileName, root)
	}

	l := &lowerer{src: source}
	return l.program(root), nil
}

// syntaxError reports the position of the first ERROR or MISSING node.
func syntaxError(fileName string, root *sitter.Node) error {
	bad := firstError(root)
	if bad == nil {
		return fmt.Errorf("%s: %w", fileName, ErrSyntax)
	}
	pos := bad.StartPoint()
	what := "unexpected input"
	if bad.IsMissing() {
		what = fmt.Sprintf("missing %q", bad.Type())
	}
	return fmt.Errorf("%s:%d:%d: %w: %s", fileName, pos.Row+1, pos.Column+1, ErrSyntax, what)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
