package tui

import (
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
)

// PasteHelper cleans clipboard content before it enters the editor: pastes
// from terminals and rendered docs tend to drag TUI borders, code fences and
// stray carriage returns along.
type PasteHelper struct {
	tuiBorderPattern     *regexp.Regexp
	markdownFencePattern *regexp.Regexp
}

// NewPasteHelper creates a paste helper with compiled patterns
func NewPasteHelper() *PasteHelper {
	return &PasteHelper{
		tuiBorderPattern:     regexp.MustCompile(`^[│├└┌┐┘┤┬┴┼─]+\s?|\s*[│├└┌┐┘┤┬┴┼─]+$`),
		markdownFencePattern: regexp.MustCompile("^```[a-zA-Z]*$"),
	}
}

// ReadClipboard returns cleaned clipboard content
func (ph *PasteHelper) ReadClipboard() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return ph.Clean(content), nil
}

// Clean normalizes pasted content for insertion into the editor
func (ph *PasteHelper) Clean(content string) string {
	if strings.TrimSpace(content) == "" {
		return content
	}

	cleaned := strings.ReplaceAll(content, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	cleaned = ph.stripTUIBorders(cleaned)
	cleaned = ph.stripMarkdownFences(cleaned)
	cleaned = trimTrailingWhitespace(cleaned)

	return cleaned
}

// WillClean reports whether Clean would alter the content
func (ph *PasteHelper) WillClean(content string) bool {
	return ph.Clean(content) != content
}

func (ph *PasteHelper) stripTUIBorders(content string) string {
	if !strings.ContainsAny(content, "│├└┌┐┘┤┬┴┼─") {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = ph.tuiBorderPattern.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

func (ph *PasteHelper) stripMarkdownFences(content string) string {
	lines := strings.Split(content, "\n")
	var kept []string
	for _, line := range lines {
		if ph.markdownFencePattern.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func trimTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// CountLines counts lines in content
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
