package sortable

import "strings"

// compound is one whitespace-free part of a selector: an optional tag plus
// zero or more classes ("tr", ".handle", "li.item.done").
type compound struct {
	tag     string
	classes []string
	// invalid compounds (".", "*.", "li.") match nothing.
	invalid bool
}

func parseCompound(s string) compound {
	var c compound
	parts := strings.Split(s, ".")
	if parts[0] != "*" {
		c.tag = parts[0]
	}
	for _, p := range parts[1:] {
		if p != "" {
			c.classes = append(c.classes, p)
		}
	}
	if len(parts) > 1 && len(c.classes) == 0 {
		c.invalid = true
	}
	return c
}

func (c compound) matches(n *Node) bool {
	if c.invalid {
		return false
	}
	if c.tag != "" && c.tag != n.Tag {
		return false
	}
	for _, class := range c.classes {
		if !n.HasClass(class) {
			return false
		}
	}
	return true
}

// Selector is a parsed descendant selector such as ".list li .handle".
// The zero Selector matches nothing.
type Selector struct {
	parts []compound
}

// ParseSelector parses a selector made of tag, class and tag.class compounds
// joined by the descendant combinator (whitespace).
func ParseSelector(s string) Selector {
	var sel Selector
	for _, f := range strings.Fields(s) {
		sel.parts = append(sel.parts, parseCompound(f))
	}
	return sel
}

// Empty reports whether the selector has no compounds.
func (s Selector) Empty() bool {
	return len(s.parts) == 0
}

// Matches reports whether n matches the selector. Ancestor compounds are
// matched against n's ancestors, innermost first.
func (s Selector) Matches(n *Node) bool {
	if n == nil || len(s.parts) == 0 {
		return false
	}
	last := len(s.parts) - 1
	if !s.parts[last].matches(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if s.parts[i].matches(p) {
			i--
		}
	}
	return i < 0
}

// Closest returns n or its nearest ancestor matching the selector, or nil.
func (s Selector) Closest(n *Node) *Node {
	for p := n; p != nil; p = p.Parent {
		if s.Matches(p) {
			return p
		}
	}
	return nil
}

// QueryAll returns every descendant of root matching the selector in tree
// order. root itself is not considered.
func (s Selector) QueryAll(root *Node) []*Node {
	if root == nil || len(s.parts) == 0 {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if s.Matches(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// Join returns the descendant selector "s other".
func (s Selector) Join(other Selector) Selector {
	parts := make([]compound, 0, len(s.parts)+len(other.parts))
	parts = append(parts, s.parts...)
	parts = append(parts, other.parts...)
	return Selector{parts: parts}
}
