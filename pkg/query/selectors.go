package query

import (
	"fmt"
	"strings"

	"github.com/go-drift/q/pkg/dom"
)

// Selector decides whether a node belongs in a matched set.
type Selector interface {
	// Match reports whether the node satisfies the selector.
	Match(node *dom.Node) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// kindSelector matches nodes of a given kind.
type kindSelector struct {
	kind string
}

func (s kindSelector) Match(node *dom.Node) bool {
	return node.Kind == s.kind
}

func (s kindSelector) Description() string {
	return fmt.Sprintf("ByKind(%s)", s.kind)
}

// ByKind returns a selector matching nodes of the given kind
// ("text", "box", "tappable").
func ByKind(kind string) Selector {
	return kindSelector{kind: kind}
}

// textSelector matches nodes by exact own-text content.
type textSelector struct {
	text string
}

func (s textSelector) Match(node *dom.Node) bool {
	return node.Text == s.text
}

func (s textSelector) Description() string {
	return fmt.Sprintf("ByText(%q)", s.text)
}

// ByText returns a selector matching nodes whose own text equals text.
// Container nodes carry no own text; this selects the leaf text nodes.
func ByText(text string) Selector {
	return textSelector{text: text}
}

// textContainingSelector matches nodes whose own text contains substring.
type textContainingSelector struct {
	substring string
}

func (s textContainingSelector) Match(node *dom.Node) bool {
	return node.Text != "" && strings.Contains(node.Text, s.substring)
}

func (s textContainingSelector) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", s.substring)
}

// ByTextContaining returns a selector matching leaf text nodes containing
// the given substring.
func ByTextContaining(substring string) Selector {
	return textContainingSelector{substring: substring}
}

// attrSelector matches nodes carrying an attribute value.
type attrSelector struct {
	name  string
	value string
}

func (s attrSelector) Match(node *dom.Node) bool {
	v, ok := node.Attr(s.name)
	return ok && v == s.value
}

func (s attrSelector) Description() string {
	return fmt.Sprintf("ByAttr(%s=%q)", s.name, s.value)
}

// ByAttr returns a selector matching nodes whose attribute name equals value.
func ByAttr(name, value string) Selector {
	return attrSelector{name: name, value: value}
}

// predicateSelector matches nodes satisfying a predicate.
type predicateSelector struct {
	fn   func(*dom.Node) bool
	desc string
}

func (s predicateSelector) Match(node *dom.Node) bool {
	return s.fn(node)
}

func (s predicateSelector) Description() string {
	return s.desc
}

// ByPredicate returns a selector matching nodes satisfying fn.
func ByPredicate(fn func(*dom.Node) bool) Selector {
	return predicateSelector{fn: fn, desc: "ByPredicate(...)"}
}
