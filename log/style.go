package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	astStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// stylePrefix colorizes a severity prefix, keeping its trailing space
// outside of the styled region.
func stylePrefix(prefix string) string {
	label := strings.TrimSuffix(prefix, " ")
	tail := prefix[len(label):]

	switch prefix {
	case prefixError:
		return errorStyle.Render(label) + tail
	case prefixWarning:
		return warningStyle.Render(label) + tail
	case prefixASTWarning, prefixASTError:
		return astStyle.Render(label) + tail
	default:
		return prefix
	}
}
