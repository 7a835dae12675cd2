package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type rustExtractor struct{}

func (rustExtractor) TreeSitterLanguage() *sitter.Language { return rust.GetLanguage() }

func (rustExtractor) QueryPatterns() string {
	return `
		(function_item name: (identifier) @name) @function
		(struct_item name: (type_identifier) @name) @struct
		(enum_item name: (type_identifier) @name) @enum
		(trait_item name: (type_identifier) @name) @interface
		(impl_item type: (type_identifier) @name) @module
		(mod_item name: (identifier) @name) @module
		(type_item name: (type_identifier) @name) @type_alias
		(const_item name: (identifier) @name) @const
	`
}

func (rustExtractor) CommentQuery() string {
	return `[(line_comment) (block_comment)] @comment`
}

func (rustExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "function":
		return chunk.KindFunction, true
	case "struct":
		return chunk.KindStruct, true
	case "enum":
		return chunk.KindEnum, true
	case "interface":
		return chunk.KindInterface, true
	case "module":
		return chunk.KindModule, true
	case "type_alias":
		return chunk.KindTypeAlias, true
	case "const":
		return chunk.KindConst, true
	default:
		return 0, false
	}
}

func (rustExtractor) MiddleImplementationQuery() string {
	return `
		(for_expression) @for_loop
		(while_expression) @while_loop
		(loop_expression) @loop
		(if_expression) @if_block
		(match_expression) @match_block
		(call_expression) @function_call
		(closure_expression) @lambda
	`
}

func (rustExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop", "loop":
		return chunk.KindLoop, true
	case "if_block", "match_block":
		return chunk.KindConditional, true
	case "function_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	default:
		return 0, false
	}
}

func (rustExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "identifier", "type_identifier")
}
