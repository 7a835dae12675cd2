package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type goExtractor struct{}

func (goExtractor) TreeSitterLanguage() *sitter.Language { return golang.GetLanguage() }

func (goExtractor) QueryPatterns() string {
	return `
		(function_declaration name: (identifier) @name) @function
		(method_declaration name: (field_identifier) @name) @method
		(type_declaration (type_spec name: (type_identifier) @name type: (struct_type))) @struct
		(type_declaration (type_spec name: (type_identifier) @name type: (interface_type))) @interface
		(type_declaration (type_spec name: (type_identifier) @name)) @type_alias
		(const_declaration) @const
		(var_declaration) @variable
	`
}

func (goExtractor) CommentQuery() string { return "(comment) @comment" }

func (goExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "method":
		return chunk.KindMethod, true
	case "struct":
		return chunk.KindStruct, true
	case "interface":
		return chunk.KindInterface, true
	case "type_alias":
		return chunk.KindTypeAlias, true
	case "const":
		return chunk.KindConst, true
	case "variable":
		return chunk.KindVariable, true
	default:
		return 0, false
	}
}

func (goExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(if_statement) @if_block
		(type_switch_statement) @switch_block
		(expression_switch_statement) @switch_block
		(call_expression) @function_call
		(func_literal) @lambda
		(defer_statement) @error_handling
	`
}

func (goExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop":
		return chunk.KindLoop, true
	case "if_block", "switch_block":
		return chunk.KindConditional, true
	case "function_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	case "error_handling":
		return chunk.KindErrorHandling, true
	default:
		return 0, false
	}
}

func (goExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "identifier", "field_identifier", "type_identifier")
}
