package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type phpExtractor struct{}

func (phpExtractor) TreeSitterLanguage() *sitter.Language { return php.GetLanguage() }

func (phpExtractor) QueryPatterns() string {
	return `
		(function_definition name: (name) @name) @function
		(method_declaration name: (name) @name) @method
		(class_declaration name: (name) @name) @class
		(interface_declaration name: (name) @name) @interface
		(namespace_definition name: (namespace_name) @name) @module
	`
}

func (phpExtractor) CommentQuery() string { return "(comment) @comment" }

func (phpExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "interface":
		return chunk.KindInterface, true
	case "module":
		return chunk.KindModule, true
	default:
		return 0, false
	}
}

func (phpExtractor) MiddleImplementationQuery() string {
	return `
		(foreach_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_statement) @switch_block
		(try_statement) @try_block
		(function_call_expression) @function_call
		(anonymous_function_creation_expression) @lambda
	`
}

func (phpExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block", "switch_block":
		return chunk.KindConditional, true
	case "try_block":
		return chunk.KindErrorHandling, true
	case "function_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	default:
		return 0, false
	}
}

func (phpExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "name", "namespace_name")
}
