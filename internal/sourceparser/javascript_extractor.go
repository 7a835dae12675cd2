// javascript_extractor.go ports the query shape of
// original_source/.../parsers/javascript.rs: function and generator
// declarations, class methods, class declarations, and arrow/function
// expressions bound in a variable_declarator, plus JSX
// elements as Component chunks.
package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type javascriptExtractor struct{}

func (javascriptExtractor) TreeSitterLanguage() *sitter.Language { return javascript.GetLanguage() }

func (javascriptExtractor) QueryPatterns() string {
	return `
		(function_declaration name: (identifier) @name) @function
		(generator_function_declaration name: (identifier) @name) @function
		(method_definition name: (property_identifier) @name) @method
		(class_declaration name: (identifier) @name) @class
		(variable_declarator name: (identifier) @name value: (arrow_function)) @function
		(variable_declarator name: (identifier) @name value: (function_expression)) @function
		(jsx_element) @component
		(jsx_self_closing_element) @component
	`
}

func (javascriptExtractor) CommentQuery() string { return "(comment) @comment" }

func (javascriptExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "component":
		return chunk.KindComponent, true
	default:
		return 0, false
	}
}

func (javascriptExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_statement) @switch_block
		(try_statement) @try_block
		(call_expression) @function_call
		(arrow_function) @lambda
	`
}

func (javascriptExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
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

func (javascriptExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	if node.Type() == "variable_declarator" {
		if n := node.ChildByFieldName("name"); n != nil {
			return n.Content(source)
		}
	}
	return fieldOrFirstChildName(node, source, "identifier", "property_identifier")
}
