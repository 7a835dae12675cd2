package sourceparser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type bashExtractor struct{}

func (bashExtractor) TreeSitterLanguage() *sitter.Language { return bash.GetLanguage() }

func (bashExtractor) QueryPatterns() string {
	return `(function_definition name: (word) @name) @function`
}

func (bashExtractor) CommentQuery() string { return "(comment) @comment" }

func (bashExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	if name == "function" {
		return chunk.KindFunction, true
	}
	return 0, false
}

func (bashExtractor) MiddleImplementationQuery() string {
	return `
		(for_statement) @for_loop
		(while_statement) @while_loop
		(if_statement) @if_block
		(case_statement) @case_block
		(command) @function_call
	`
}

func (bashExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop":
		return chunk.KindLoop, true
	case "if_block", "case_block":
		return chunk.KindConditional, true
	case "function_call":
		return chunk.KindFunctionCall, true
	default:
		return 0, false
	}
}

func (bashExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	return fieldOrFirstChildName(node, source, "word")
}
