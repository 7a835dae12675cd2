package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type pythonExtractor struct{}

func (pythonExtractor) TreeSitterLanguage() *sitter.Language { return python.GetLanguage() }

func (pythonExtractor) QueryPatterns() string {
	return `
		(function_definition name: (identifier) @name) @function
		(class_definition name: (identifier) @name) @class
		(decorated_definition (function_definition name: (identifier) @name)) @function
	`
}

func (pythonExtractor) CommentQuery() string { return "(comment) @comment" }

func (pythonExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "class":
		return chunk.KindClass, true
	default:
		return 0, false
	}
}

func (pythonExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(try_statement) @try_block
		(except_clause) @except_block
		(call) @function_call
		(lambda) @lambda
	`
}

func (pythonExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block":
		return chunk.KindConditional, true
	case "try_block", "except_block":
		return chunk.KindErrorHandling, true
	case "function_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	default:
		return 0, false
	}
}

func (pythonExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	// decorated_definition wraps the function_definition; walk down to it.
	if node.Type() == "decorated_definition" {
		if fn := node.ChildByFieldName("definition"); fn != nil {
			node = fn
		}
	}
	return fieldOrFirstChildName(node, source, "identifier")
}
