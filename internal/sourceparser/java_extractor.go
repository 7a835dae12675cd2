package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type javaExtractor struct{}

func (javaExtractor) TreeSitterLanguage() *sitter.Language { return java.GetLanguage() }

func (javaExtractor) QueryPatterns() string {
	return `
		(method_declaration name: (identifier) @name) @method
		(constructor_declaration name: (identifier) @name) @method
		(class_declaration name: (identifier) @name) @class
		(interface_declaration name: (identifier) @name) @interface
		(enum_declaration name: (identifier) @name) @enum
		(field_declaration) @variable
	`
}

func (javaExtractor) CommentQuery() string {
	return `[(line_comment) (block_comment)] @comment`
}

func (javaExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "interface":
		return chunk.KindInterface, true
	case "enum":
		return chunk.KindEnum, true
	case "variable":
		return chunk.KindVariable, true
	default:
		return 0, false
	}
}

func (javaExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_expression) @switch_block
		(try_statement) @try_block
		(method_invocation) @method_call
		(lambda_expression) @lambda
	`
}

func (javaExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block", "switch_block":
		return chunk.KindConditional, true
	case "try_block":
		return chunk.KindErrorHandling, true
	case "method_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	default:
		return 0, false
	}
}

func (javaExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "identifier")
}
