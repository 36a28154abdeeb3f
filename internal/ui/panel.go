package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/config"
	"emoji-creator/internal/features"
)

// ActionKind says what a click on a node does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionTab
	ActionUpdate
	ActionExport
	ActionMode
)

// Action is the result of a click. Update is set for ActionUpdate, Tab for ActionTab and
// Mode (the mode to switch to) for ActionMode.
type Action struct {
	Kind   ActionKind
	Tab    Tab
	Update features.Update
	Mode   string
}

// Tab is one page of the control panel.
type Tab int

const (
	TabStyle Tab = iota
	TabFace
	TabExtras
)

var tabNames = []string{"Style", "Face", "Extras"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Tab(" + strconv.Itoa(int(t)) + ")"
	}
	return tabNames[t]
}

// Swatch palettes offered for the body and the accessories.
var (
	BodyPalette      = []string{"#FFE55C", "#FFB347", "#FF6B6B", "#FF8FD8", "#B28DFF", "#6BCBFF", "#5CFFB0", "#C0C0C0", "#FFD700", "#8B5A2B", "#FFFFFF", "#333333"}
	AccessoryPalette = []string{"#FF5C5C", "#5C8DFF", "#5CFF8D", "#FFD15C", "#B25CFF", "#222222"}
)

const (
	// EyeSizeStep is how much one press of the eye size stepper changes the 2D eye radius.
	EyeSizeStep = 5

	panelPadding = 14
	cellGap      = 8
	rowGap       = 8
	swatchCols   = 6
)

var (
	eyeLabels = map[features.EyeStyle]string{
		features.EyeNormal: "Normal", features.EyeStar: "Star", features.EyeHeart: "Heart",
		features.EyeWink: "Wink", features.EyeClosed: "Closed", features.EyeSurprised: "Surprised",
		features.EyeHappy: "Happy",
	}
	mouthLabels = map[features.MouthStyle]string{
		features.MouthHappy: "Happy", features.MouthSad: "Sad",
		features.MouthSmile: "Smile", features.MouthFrown: "Frown",
	}
	accessoryLabels = map[features.Accessory]string{features.Hat: "Party Hat", features.Glasses: "Cool Glasses"}
)

// ControlPanel is the tabbed editor for the feature state. It never edits the state
// itself: clicks come back as Actions for the caller to apply. Call Sync whenever the
// state or the mode changes so active buttons follow them.
type ControlPanel struct {
	engine *Engine
	tab    Tab
	state  features.State
	mode   string
	synced bool

	panel *Node
	rows  [][]*Node
}

// NewControlPanel returns a panel on the Style tab laid out by engine.
func NewControlPanel(engine *Engine) *ControlPanel {
	p := &ControlPanel{engine: engine, state: features.Default(), mode: config.Mode3D}
	p.rebuild()
	return p
}

// Tab returns the visible tab.
func (p *ControlPanel) Tab() Tab {
	return p.tab
}

// SetTab shows tab t.
func (p *ControlPanel) SetTab(t Tab) {
	if t == p.tab {
		return
	}
	p.tab = t
	p.rebuild()
}

// Sync updates the panel to show s in mode ("2d" or "3d").
func (p *ControlPanel) Sync(s features.State, mode string) {
	if p.synced && p.mode == mode && p.state.Equal(s) {
		return
	}
	p.state, p.mode, p.synced = s, mode, true
	p.rebuild()
}

// Bounds returns the panel rectangle after the last layout.
func (p *ControlPanel) Bounds() rl.Rectangle {
	return p.panel.Bounds
}

// Layout positions every node for a screen of the given size.
func (p *ControlPanel) Layout(screenW, screenH int32) {
	if !p.engine.Layout(screenW, screenH) {
		return
	}
	pb := p.panel.Bounds
	y := pb.Y + panelPadding
	width := pb.Width - 2*panelPadding
	for _, row := range p.rows {
		n := float32(len(row))
		cellW := (width - cellGap*(n-1)) / n
		var rowH float32
		for i, node := range row {
			node.Bounds.X = pb.X + panelPadding + float32(i)*(cellW+cellGap)
			node.Bounds.Y = y
			node.Bounds.Width = cellW
			if node.Bounds.Height > rowH {
				rowH = node.Bounds.Height
			}
		}
		y += rowH + rowGap
	}
}

// Click maps a click at (x, y) to an action. Tab clicks switch the tab before returning.
func (p *ControlPanel) Click(x, y float32) (Action, bool) {
	n := p.engine.HitTest(x, y)
	if n == nil {
		return Action{}, false
	}
	a := n.Action
	if a.Kind == ActionTab {
		p.SetTab(a.Tab)
	}
	return a, true
}

// Draw draws the panel with raylib.
func (p *ControlPanel) Draw() {
	p.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	p.engine.Draw()
}

func (p *ControlPanel) rebuild() {
	s := p.state
	p.panel = NewNode("panel", "panel", "panel", "")
	p.rows = nil

	p.row(NewNode("label", "title", "", "Emoji Creator"))
	modeBtn := NewNode("button", "button", "mode", "View: "+strings.ToUpper(p.mode))
	modeBtn.Action = Action{Kind: ActionMode, Mode: otherMode(p.mode)}
	p.row(modeBtn)

	var tabs []*Node
	for i, name := range tabNames {
		t := NewNode("button", "tab", "tab-"+strings.ToLower(name), name)
		t.Active = Tab(i) == p.tab
		t.Action = Action{Kind: ActionTab, Tab: Tab(i)}
		tabs = append(tabs, t)
	}
	p.row(tabs...)

	switch p.tab {
	case TabStyle:
		p.row(section("Color"))
		p.swatches(features.FieldColor, BodyPalette, s.Color)
		p.row(toggle(features.FieldMetallic, "Metallic Finish", s.Metallic))
		p.row(toggle(features.FieldBouncing, "Bouncy Animation", s.Bouncing))
	case TabFace:
		p.row(section("Eye Style"))
		var eyes []*Node
		for _, e := range p.eyeChoices() {
			eyes = append(eyes, choice(features.FieldEyeStyle, e.String(), eyeLabels[e], s.EyeStyle == e))
		}
		p.grid(eyes, 3)
		p.row(section("Expression"))
		var mouths []*Node
		for _, m := range p.mouthChoices() {
			mouths = append(mouths, choice(features.FieldMouthStyle, m.String(), mouthLabels[m], s.MouthStyle == m))
		}
		p.grid(mouths, 2)
		if p.mode == config.Mode2D {
			p.row(section("Eye Size: " + strconv.Itoa(s.EyeSize)))
			p.row(
				stepper(s.EyeSize-EyeSizeStep, "-", s.EyeSize > features.MinEyeSize),
				stepper(s.EyeSize+EyeSizeStep, "+", s.EyeSize < features.MaxEyeSize),
			)
		}
	case TabExtras:
		p.row(section("Accessories"))
		var accs []*Node
		for _, a := range features.Accessories() {
			accs = append(accs, choice(features.FieldAccessory, a.String(), accessoryLabels[a], s.Has(a)))
		}
		p.row(accs...)
		p.row(section("Accessory Color"))
		p.swatches(features.FieldAccessoryColor, AccessoryPalette, s.AccessoryColor)
	}

	export := NewNode("button", "button", "export", "Download Emoji")
	export.Action = Action{Kind: ActionExport}
	p.row(export)

	nodes := []*Node{p.panel}
	for _, row := range p.rows {
		nodes = append(nodes, row...)
	}
	p.engine.SetNodes(nodes)
}

func (p *ControlPanel) eyeChoices() []features.EyeStyle {
	if p.mode == config.Mode2D {
		return []features.EyeStyle{features.EyeNormal, features.EyeHappy}
	}
	return []features.EyeStyle{features.EyeNormal, features.EyeStar, features.EyeHeart, features.EyeWink, features.EyeClosed, features.EyeSurprised}
}

func (p *ControlPanel) mouthChoices() []features.MouthStyle {
	if p.mode == config.Mode2D {
		return []features.MouthStyle{features.MouthSmile, features.MouthFrown}
	}
	return []features.MouthStyle{features.MouthHappy, features.MouthSad}
}

func (p *ControlPanel) row(nodes ...*Node) {
	p.rows = append(p.rows, nodes)
}

func (p *ControlPanel) grid(nodes []*Node, cols int) {
	for len(nodes) > 0 {
		n := min(cols, len(nodes))
		p.row(nodes[:n]...)
		nodes = nodes[n:]
	}
}

func (p *ControlPanel) swatches(field string, palette []string, current string) {
	var cells []*Node
	for _, hex := range palette {
		c, _ := ParseColor(hex)
		sw := NewNode("swatch", "swatch", "", "")
		sw.Fill = &c
		sw.Active = strings.EqualFold(hex, current)
		sw.Action = Action{Kind: ActionUpdate, Update: features.Update{Field: field, Value: hex}}
		cells = append(cells, sw)
	}
	p.grid(cells, swatchCols)
}

func section(text string) *Node {
	return NewNode("label", "section", "", text)
}

func choice(field, value, label string, active bool) *Node {
	n := NewNode("button", "button", "", label)
	n.Active = active
	n.Action = Action{Kind: ActionUpdate, Update: features.Update{Field: field, Value: value}}
	return n
}

func toggle(field, label string, on bool) *Node {
	state := "Off"
	if on {
		state = "On"
	}
	n := NewNode("button", "switch", "", label+": "+state)
	n.Active = on
	n.Action = Action{Kind: ActionUpdate, Update: features.Update{Field: field, Value: strconv.FormatBool(!on)}}
	return n
}

// stepper returns an eye size button. A disabled stepper is drawn but not clickable.
func stepper(size int, label string, enabled bool) *Node {
	n := NewNode("button", "button", "", label)
	if enabled {
		n.Action = Action{Kind: ActionUpdate, Update: features.Update{Field: features.FieldEyeSize, Value: strconv.Itoa(features.ClampEyeSize(size))}}
	}
	return n
}

func otherMode(mode string) string {
	if mode == config.Mode2D {
		return config.Mode3D
	}
	return config.Mode2D
}
