package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type cppExtractor struct{}

func (cppExtractor) TreeSitterLanguage() *sitter.Language { return cpp.GetLanguage() }

func (cppExtractor) QueryPatterns() string {
	return `
		(function_definition declarator: (function_declarator declarator: (identifier) @name)) @function
		(function_definition declarator: (function_declarator declarator: (field_identifier) @name)) @method
		(class_specifier name: (type_identifier) @name) @class
		(struct_specifier name: (type_identifier) @name) @struct
		(enum_specifier name: (type_identifier) @name) @enum
		(namespace_definition name: (identifier) @name) @module
	`
}

func (cppExtractor) CommentQuery() string { return "(comment) @comment" }

func (cppExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "method":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
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

func (cppExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_statement) @switch_block
		(try_statement) @try_block
		(call_expression) @function_call
		(lambda_expression) @lambda
	`
}

func (cppExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
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

func (cppExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	if node.Type() == "function_definition" {
		if decl := node.ChildByFieldName("declarator"); decl != nil {
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				return inner.Content(source)
			}
		}
	}
	return fieldOrFirstChildName(node, source, "identifier", "field_identifier", "type_identifier")
}
