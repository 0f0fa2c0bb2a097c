package mdformat

// wrapWidth is the content budget for a rendered line. The reflow pass
// counts text runs only; active prefixes are applied at render time and
// are not part of this budget.
const wrapWidth = 80

// fixLineBreaks resolves every soft break into either a hard break or a
// kept soft break (rendered as a single space). The pass is greedy with a
// one-run lookahead: it scans once, never revisits a decision, and only
// measures the next unbreakable chunk. Break directives are trimmed from
// both ends of the sequence and exactly one trailing hard break is
// appended so the output ends in a newline.
func fixLineBreaks(dirs []Directive) []Directive {
	dirs = trimBreaks(dirs)
	out := make([]Directive, 0, len(dirs)+1)
	lineLength := 0
	for i, d := range dirs {
		switch d.Op {
		case opText:
			lineLength += visibleWidth(d.Text)
			out = append(out, d)
		case opSoftBreak:
			// A kept soft break renders as a space, so it and the next
			// unbreakable chunk must still fit the budget.
			if lineLength > wrapWidth || lineLength+1+lookahead(dirs[i+1:]) > wrapWidth {
				out = append(out, hardBreak())
				lineLength = 0
			} else {
				lineLength++
				out = append(out, d)
			}
		case opHardBreak, opBlankLine, opRule:
			lineLength = 0
			out = append(out, d)
		default:
			out = append(out, d)
		}
	}
	return append(out, hardBreak())
}

// lookahead sums the width of the next unbreakable run of text, stopping
// at the first break, blank line, or rule. It deliberately measures one
// chunk, not the rest of the paragraph.
func lookahead(dirs []Directive) int {
	width := 0
	for _, d := range dirs {
		switch d.Op {
		case opSoftBreak, opHardBreak, opBlankLine, opRule:
			return width
		case opText:
			width += visibleWidth(d.Text)
		}
	}
	return width
}

func trimBreaks(dirs []Directive) []Directive {
	for len(dirs) > 0 && isBreak(dirs[0]) {
		dirs = dirs[1:]
	}
	for len(dirs) > 0 && isBreak(dirs[len(dirs)-1]) {
		dirs = dirs[:len(dirs)-1]
	}
	return dirs
}

func isBreak(d Directive) bool {
	return d.Op == opSoftBreak || d.Op == opHardBreak || d.Op == opBlankLine
}
