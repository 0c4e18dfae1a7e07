package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sequel-tui/sequel/internal/tui/styles"
)

// ToastLevel selects the toast styling.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
)

func (l ToastLevel) String() string {
	switch l {
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	default:
		return "info"
	}
}

// Toast is a single non-blocking notification.
type Toast struct {
	id      int
	Message string
	Level   ToastLevel
}

// toastExpiredMsg dismisses the toast with the matching id.
type toastExpiredMsg struct {
	id int
}

// ToastStack holds the visible toasts, newest first, each auto-dismissing
// after the configured duration.
type ToastStack struct {
	toasts   []Toast
	nextID   int
	duration time.Duration
}

// NewToastStack creates an empty stack. A non-positive duration makes
// toasts sticky.
func NewToastStack(duration time.Duration) *ToastStack {
	return &ToastStack{duration: duration}
}

// Push adds a toast and returns the command that later dismisses it.
func (s *ToastStack) Push(message string, level ToastLevel) tea.Cmd {
	id := s.nextID
	s.nextID++

	s.toasts = append([]Toast{{id: id, Message: message, Level: level}}, s.toasts...)

	if s.duration <= 0 {
		return nil
	}
	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Update handles dismissal messages; everything else passes through.
func (s *ToastStack) Update(msg tea.Msg) {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return
	}
	for i, toast := range s.toasts {
		if toast.id == expired.id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// Visible returns the current toasts, newest first.
func (s *ToastStack) Visible() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// View renders the stack, one styled line per toast, newest on top.
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.toasts))
	for _, toast := range s.toasts {
		style := styles.GetToastStyle(toast.Level.String())
		lines = append(lines, style.Render(toast.Message))
	}
	return strings.Join(lines, "\n")
}
