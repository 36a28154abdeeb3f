package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"emoji-creator/internal/commands"
	"emoji-creator/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Log lines drawn above the input bar.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 160
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console bar at the bottom of the window, shown and hidden with ESC.
// Lines starting with "cmd " run through the command registry; anything else is only
// echoed to the log with a hint.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// Input returns the text typed so far.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Type appends text to the input line.
func (t *Terminal) Type(s string) {
	t.inputBuf += s
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if len(t.inputBuf) == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.inputBuf)
	t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
}

// Submit logs the input line, runs it if it is a command and clears it. Command errors are
// logged, never returned.
func (t *Terminal) Submit() {
	line := t.inputBuf
	if line == "" {
		return
	}
	t.inputBuf = ""
	t.log.Log(prompt + line)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd ", try: cmd help`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles ESC and, while open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	// Ctrl+V or Cmd+V
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.Type(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(string(rune(c)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Submit()
	}
}

// Draw draws the input bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	barY := int(rl.GetScreenHeight()) - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := Tail(t.log.Lines(), maxLinesOnScreen)
	for i, line := range lines {
		y := chatY + i*lineHeight + padding
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}

// Tail returns the last n lines, each cut to a drawable length.
func Tail(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if utf8.RuneCountInString(line) > maxLineChars {
			r := []rune(line)
			line = string(r[:maxLineChars-3]) + "..."
		}
		out[i] = line
	}
	return out
}
