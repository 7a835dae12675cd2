// ruby_extractor.go ports original_source/.../parsers/ruby.rs's query set
// and attr_accessor symbol-joining logic verbatim in Go idiom.
package sourceparser

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/unhappychoice/gittype/internal/chunk"
)

type rubyExtractor struct{}

func (rubyExtractor) TreeSitterLanguage() *sitter.Language { return ruby.GetLanguage() }

func (rubyExtractor) QueryPatterns() string {
	return `
		(method name: (identifier) @name) @method
		(singleton_method object: (self) name: (identifier) @name) @class_method
		(singleton_method name: (identifier) @name) @singleton_method
		(class name: (constant) @name) @class
		(module name: (constant) @name) @module
		(call method: (identifier) @method_name (#match? @method_name "^(attr_accessor|attr_reader|attr_writer)$") arguments: (argument_list)) @attr_accessor
	`
}

func (rubyExtractor) CommentQuery() string { return "(comment) @comment" }

func (rubyExtractor) CaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "method", "class_method", "singleton_method", "attr_accessor":
		return chunk.KindMethod, true
	case "class":
		return chunk.KindClass, true
	case "module":
		return chunk.KindModule, true
	default:
		return 0, false
	}
}

func (rubyExtractor) MiddleImplementationQuery() string {
	return `
		(for) @for_loop
		(while) @while_loop
		(until) @until_loop
		(if) @if_block
		(unless) @unless_block
		(case) @case_block
		(begin) @begin_block
		(call) @method_call
		(lambda) @lambda
		(block) @code_block
	`
}

func (rubyExtractor) MiddleCaptureNameToChunkKind(name string) (chunk.Kind, bool) {
	switch name {
	case "for_loop", "while_loop", "until_loop":
		return chunk.KindLoop, true
	case "if_block", "unless_block", "case_block":
		return chunk.KindConditional, true
	case "begin_block":
		return chunk.KindErrorHandling, true
	case "method_call":
		return chunk.KindFunctionCall, true
	case "lambda":
		return chunk.KindLambda, true
	case "code_block":
		return chunk.KindCodeBlock, true
	default:
		return 0, false
	}
}

func (rubyExtractor) ExtractName(node *sitter.Node, source []byte, captureName string) string {
	if captureName == "attr_accessor" {
		return extractAttrAccessorName(node, source)
	}
	if name, ok := extractFirstNamedChild(node, source, "identifier", "constant"); ok {
		return name
	}
	return "anonymous"
}

func extractAttrAccessorName(node *sitter.Node, source []byte) string {
	var symbols []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "identifier" {
			continue
		}
		methodName := child.Content(source)
		if methodName != "attr_accessor" && methodName != "attr_reader" && methodName != "attr_writer" {
			continue
		}
		if i+1 < int(node.ChildCount()) {
			args := node.Child(i + 1)
			if args != nil && args.Type() == "argument_list" {
				for j := 0; j < int(args.ChildCount()); j++ {
					arg := args.Child(j)
					if arg.Type() == "simple_symbol" {
						symbols = append(symbols, strings.TrimPrefix(arg.Content(source), ":"))
					}
				}
			}
		}
		break
	}
	if len(symbols) == 0 {
		return "unknown_attr"
	}
	return strings.Join(symbols, ", ") + " (" + strconv.Itoa(len(symbols)) + ")"
}
