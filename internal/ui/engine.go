package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

//go:embed panel.css
var defaultCSS string

// Engine holds the current stylesheet and nodes, lays them out and draws them with raylib.
// Draw order is node order. Resolved styles are cached until the nodes, the sheet or
// the screen size change.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	screenW      int32
	screenH      int32
}

// New creates an engine using the built-in panel stylesheet.
func New() *Engine {
	e := &Engine{}
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: built-in stylesheet: %v", err))
	}
	e.sheet = sheet
	return e
}

// LoadCSS loads and parses a CSS file from path, replacing the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Nodes returns the current nodes in draw order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// resolveProps returns merged properties for a node. Rules apply in sheet order; an
// :active rule matches only active nodes.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if !matches(rule.Selector, n) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

func matches(sel string, n *Node) bool {
	if len(sel) < 2 {
		return false
	}
	name, active := splitPseudo(sel[1:])
	if active && !n.Active {
		return false
	}
	switch sel[0] {
	case '.':
		return n.HasClass(name)
	case '#':
		return n.ID == name
	}
	return false
}

// resolveBounds sets n.Bounds from style for the given screen size. Size and position
// are only changed where the style specifies them.
func resolveBounds(n *Node, style ComputedStyle, screenW, screenH int32) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
	switch {
	case style.LeftPct >= 0:
		n.Bounds.X = float32((screenW - w) * style.LeftPct / 100)
	case style.HasLeft:
		n.Bounds.X = float32(style.Left)
	case style.HasRight:
		n.Bounds.X = float32(screenW - style.Right - w)
	}
	switch {
	case style.TopPct >= 0:
		n.Bounds.Y = float32((screenH - h) * style.TopPct / 100)
	case style.HasTop:
		n.Bounds.Y = float32(style.Top)
	}
}

// Layout resolves styles and bounds for a screen of the given size. It reports whether
// anything was recomputed.
func (e *Engine) Layout(screenW, screenH int32) bool {
	if e.cacheValid && screenW == e.screenW && screenH == e.screenH {
		return false
	}
	e.screenW, e.screenH = screenW, screenH
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		resolveBounds(n, e.cachedStyles[i], screenW, screenH)
	}
	e.cacheValid = true
	return true
}

// Style returns the resolved style of n after Layout; the default style when n is unknown.
func (e *Engine) Style(n *Node) ComputedStyle {
	for i, m := range e.nodes {
		if m == n && i < len(e.cachedStyles) {
			return e.cachedStyles[i]
		}
	}
	return DefaultComputedStyle()
}

// HitTest returns the topmost clickable node containing (x, y), or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Action.Kind != ActionNone && n.Contains(x, y) {
			return n
		}
	}
	return nil
}

// Draw lays out for the current screen and draws every node: background, border, text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		bg := style.Background
		if n.Fill != nil {
			bg = *n.Fill
		}
		if bg.A > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, style.FontSize, style.Color)
		}
	}
}

// Stylesheet returns the current stylesheet.
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
