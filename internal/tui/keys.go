package tui

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyHome     = "home"
	keyEnd      = "end"
	keyG        = "g"
	keyShiftG   = "G"
	keyPlus     = "+"
	keyEquals   = "="
	keyMinus    = "-"
	keyColon    = ":"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
	helpSummary = "←/h prev • →/l next • g/G first/last • +/- page size • : jump • q quit"
)
