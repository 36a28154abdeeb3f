package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button, swatch. Class may hold several
// space-separated classes matched by .class rules; ID is matched by #id rules.
type Node struct {
	Type   string // "panel", "label", "button", "swatch"
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
	// Active nodes also match ".class:active" rules (selected tab, pressed switch).
	Active bool
	// Fill, when set, overrides the CSS background (color swatches).
	Fill *rl.Color
	// Action is what a click on this node does. Nodes with a zero Action are not clickable.
	Action Action
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// HasClass reports whether class is one of n's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Contains reports whether the point (x, y) is inside n's bounds.
func (n *Node) Contains(x, y float32) bool {
	b := n.Bounds
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}
