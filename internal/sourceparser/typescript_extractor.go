package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type typescriptExtractor struct{}

func (typescriptExtractor) TreeSitterLanguage() *sitter.Language { return typescript.GetLanguage() }

func (typescriptExtractor) QueryPatterns() string {
	return `
		(function_declaration name: (identifier) @name) @function
		(generator_function_declaration name: (identifier) @name) @function
		(method_definition name: (property_identifier) @name) @method
		(class_declaration name: (type_identifier) @name) @class
		(interface_declaration name: (type_identifier) @name) @interface
		(type_alias_declaration name: (type_identifier) @name) @type_alias
		(variable_declarator name: (identifier) @name value: (arrow_function)) @function
		(variable_declarator name: (identifier) @name value: (function_expression)) @function
		(enum_declaration name: (identifier) @name) @enum
		(jsx_element) @component
		(jsx_self_closing_element) @component
	`
}

func (typescriptExtractor) CommentQuery() string { return "(comment) @comment" }

func (typescriptExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "interface":
		return chunk.KindInterface, true
	case "type_alias":
		return chunk.KindTypeAlias, true
	case "enum":
		return chunk.KindEnum, true
	case "component":
		return chunk.KindComponent, true
	default:
		return 0, false
	}
}

func (typescriptExtractor) MiddleImplementationQuery() string {
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

func (typescriptExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
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

func (typescriptExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	if node.Type() == "variable_declarator" {
		if n := node.ChildByFieldName("name"); n != nil {
			return n.Content(source)
		}
	}
	return fieldOrFirstChildName(node, source, "identifier", "property_identifier", "type_identifier")
}
