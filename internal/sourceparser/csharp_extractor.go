package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type csharpExtractor struct{}

func (csharpExtractor) TreeSitterLanguage() *sitter.Language { return csharp.GetLanguage() }

func (csharpExtractor) QueryPatterns() string {
	return `
		(method_declaration name: (identifier) @name) @method
		(class_declaration name: (identifier) @name) @class
		(interface_declaration name: (identifier) @name) @interface
		(struct_declaration name: (identifier) @name) @struct
		(enum_declaration name: (identifier) @name) @enum
		(namespace_declaration name: (identifier) @name) @module
	`
}

func (csharpExtractor) CommentQuery() string {
	return `[(comment)] @comment`
}

func (csharpExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "interface":
		return chunk.KindInterface, true
	case "struct":
		return chunk.KindStruct, true
	case "enum":
		return chunk.KindEnum, true
	case "module":
		return chunk.KindModule, true
	default:
		return 0, false
	}
}

func (csharpExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_statement) @switch_block
		(try_statement) @try_block
		(invocation_expression) @function_call
		(lambda_expression) @lambda
	`
}

func (csharpExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
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

func (csharpExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "identifier")
}
