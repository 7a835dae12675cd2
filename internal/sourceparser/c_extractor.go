package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type cExtractor struct{}

func (cExtractor) TreeSitterLanguage() *sitter.Language { return c.GetLanguage() }

func (cExtractor) QueryPatterns() string {
	return `
		(function_definition declarator: (function_declarator declarator: (identifier) @name)) @function
		(struct_specifier name: (type_identifier) @name) @struct
		(enum_specifier name: (type_identifier) @name) @enum
		(type_definition) @type_alias
		(declaration) @variable
	`
}

func (cExtractor) CommentQuery() string { return "(comment) @comment" }

func (cExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "struct":
		return chunk.KindStruct, true
	case "enum":
		return chunk.KindEnum, true
	case "type_alias":
		return chunk.KindTypeAlias, true
	case "variable":
		return chunk.KindVariable, true
	default:
		return 0, false
	}
}

func (cExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(switch_statement) @switch_block
		(call_expression) @function_call
	`
}

func (cExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block", "switch_block":
		return chunk.KindConditional, true
	case "function_call":
		return chunk.KindFunctionCall, true
	default:
		return 0, false
	}
}

func (cExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	if node.Type() == "function_definition" {
		if decl := node.ChildByFieldName("declarator"); decl != nil {
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				return inner.Content(source)
			}
		}
	}
	return fieldOrFirstChildName(node, source, "identifier", "type_identifier")
}
