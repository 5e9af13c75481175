package tui

import "strings"

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// window returns at most height lines of text starting at line top.
func window(text string, top, height int) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if top > len(lines) {
		top = len(lines)
	}
	if top < 0 {
		top = 0
	}
	end := len(lines)
	if height >= 0 && top+height < end {
		end = top + height
	}
	return strings.Join(lines[top:end], "\n")
}
