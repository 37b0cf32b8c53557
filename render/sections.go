// Package render assembles a completed application into a section tree
// and renders it as a plain-text transcript and a .docx document. Both
// backends consume the same tree, so the two outputs always share the
// same section order.
package render

// Line is one rendered line: "Label: Value", a bare Value when Label is
// empty. Indent marks driver detail lines.
type Line struct {
	Label  string
	Value  string
	Indent bool
}

// Section is a titled block of lines. Sections with an empty title (the
// closing statement, the contact phone) render without a heading.
type Section struct {
	Title string
	Lines []Line
}

// Document is the assembled application: a title, the generation
// timestamp and the fixed-order sections.
type Document struct {
	Title       string
	GeneratedAt string
	Sections    []Section
}
