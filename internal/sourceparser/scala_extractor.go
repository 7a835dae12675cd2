package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/scala"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type scalaExtractor struct{}

func (scalaExtractor) TreeSitterLanguage() *sitter.Language { return scala.GetLanguage() }

func (scalaExtractor) QueryPatterns() string {
	return `
		(function_definition name: (identifier) @name) @function
		(class_definition name: (identifier) @name) @class
		(trait_definition name: (identifier) @name) @interface
		(object_definition name: (identifier) @name) @module
	`
}

func (scalaExtractor) CommentQuery() string {
	return `[(comment)] @comment`
}

func (scalaExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
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

func (scalaExtractor) MiddleImplementationQuery() string {
	return `
		(for_expression) @for_loop
		(while_expression) @while_loop
		(if_expression) @if_block
		(match_expression) @match_block
		(call_expression) @function_call
	`
}

func (scalaExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block", "match_block":
		return chunk.KindConditional, true
	case "function_call":
		return chunk.KindFunctionCall, true
	default:
		return 0, false
	}
}

func (scalaExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "identifier")
}
