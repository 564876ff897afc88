package docquiz

import "strings"

// FormatSection formats a section's blocks, in order, as prompt context.
// Text blocks become "Explanation:" lines and code blocks become fenced
// "Code example:" snippets. Each block is followed by a blank line.
func FormatSection(section Section) string {
	var sb strings.Builder
	for _, b := range section.Blocks {
		switch b.Type {
		case BlockText:
			sb.WriteString("Explanation: ")
			sb.WriteString(b.Content)
			sb.WriteString("\n\n")
		case BlockCode:
			sb.WriteString("Code example:\n```")
			sb.WriteString(b.Language)
			sb.WriteString("\n")
			sb.WriteString(b.Content)
			sb.WriteString("\n```\n\n")
		}
	}
	return sb.String()
}
