package optparse

import "strings"

// usageBreakColumn is the screen column where option descriptions start.
// Names too long to leave any padding before it push their description to
// the next line instead.
const usageBreakColumn = 20

// Usage renders the help block: the parser description, an OPTIONS:
// header, then one entry per option in registration order, with
// descriptions aligned at a fixed column. The text is returned, not
// printed; presenting it is the caller's business.
func (p *Parser) Usage() string {
	var b strings.Builder

	b.WriteString(p.description)
	b.WriteString("\n\nOPTIONS:\n\n")

	for i := range p.options {
		o := &p.options[i]

		b.WriteString("  --")
		b.WriteString(o.name)

		if width := len(o.name) + 4; width < usageBreakColumn {
			b.WriteString(strings.Repeat(" ", usageBreakColumn-width))
		} else {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", usageBreakColumn))
		}

		b.WriteString(o.description)
		b.WriteByte('\n')
	}

	return b.String()
}
