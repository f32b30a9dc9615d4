package styles

import (
	"bytes"
	"encoding/xml"
)

const fontCharWidth = 0.55

// EscapeXML escapes a string for safe embedding in SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// TruncateLabel shortens label to fit availWidth at the given font size,
// appending ".." when text is dropped. Labels shorter than three characters
// are never truncated further. Width is measured in characters, not bytes.
func TruncateLabel(label string, availWidth, fontSize float64) string {
	charWidth := fontSize * fontCharWidth
	maxChars := int(availWidth / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}

	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-2]) + ".."
}
