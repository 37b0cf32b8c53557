package render

import "strings"

const transcriptHeader = "🚗 СРОЧНАЯ ЗАЯВКА НА СТРАХОВАНИЕ"

// Cosmetic transcript prefixes; section order and content come from the
// assembled tree alone.
var sectionEmoji = map[string]string{
	titleInsured: "👤",
	titleOwner:   "👤",
	titleLicense: "🚗",
	titleVehicle: "🚗",
	titleDrivers: "👥",
}

// Text renders the transcript: the section tree as plain text, one
// "Label: value" line per field.
func Text(doc Document) string {
	var b strings.Builder
	b.WriteString(transcriptHeader)
	b.WriteString("\n\n")

	for _, s := range doc.Sections {
		if s.Title != "" {
			if emoji, ok := sectionEmoji[s.Title]; ok {
				b.WriteString(emoji)
				b.WriteString(" ")
			}
			b.WriteString(s.Title)
			b.WriteString(":\n")
		}
		for _, line := range s.Lines {
			if line.Indent {
				b.WriteString("   ")
			}
			if line.Label != "" {
				b.WriteString(line.Label)
				b.WriteString(": ")
			}
			b.WriteString(line.Value)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("📅 Дата заявки: ")
	b.WriteString(doc.GeneratedAt)
	return b.String()
}
