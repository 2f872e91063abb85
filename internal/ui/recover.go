package ui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// safe wraps a command so a panic is logged and reported instead of tearing
// down the terminal.
func safe(logger *zap.Logger, name string, fn func() tea.Msg) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("command", name),
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())),
				)
				msg = panicMsg{err: fmt.Errorf("%s: internal error", name)}
			}
		}()

		return fn()
	}
}
