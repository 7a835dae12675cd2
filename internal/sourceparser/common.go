package sourceparser

import sitter "github.com/smacker/go-tree-sitter"

// extractFirstNamedChild walks node's immediate children and returns the
// text of the first one whose type is in wantedTypes. Grounded on
// original_source's extract_name_from_node traversal (ruby.rs) generalized
// across languages that name identifiers/constants the same way.
func extractFirstNamedChild(node *sitter.Node, source []byte, wantedTypes ...string) (string, bool) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		for _, t := range wantedTypes {
			if child.Type() == t {
				return child.Content(source), true
			}
		}
	}
	return "", false
}

// fieldOrFirstChildName tries ChildByFieldName("name") first (the common
// case for grammars that expose a `name:` field), falling back to scanning
// immediate children for an identifier-shaped node.
func fieldOrFirstChildName(node *sitter.Node, source []byte, identifierTypes ...string) string {
	if n := node.ChildByFieldName("name"); n != nil {
		return n.Content(source)
	}
	if name, ok := extractFirstNamedChild(node, source, identifierTypes...); ok {
		return name
	}
	return "anonymous"
}

const dummyQuery = "(ERROR) @dummy"
