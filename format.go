package mdformat

import "strings"

// Format reformats Markdown source into its canonical hard-wrapped form:
// lines wrapped against an 80-column budget, clause-level line breaks,
// consistent nested indentation for quotes and lists, normalized blank
// lines, and literal content preserved inside code spans, code blocks,
// and link targets. Leading frontmatter is passed through verbatim. The
// result ends with exactly one newline, and formatting is idempotent.
func Format(src []byte) ([]byte, error) {
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	front, body := splitFrontMatter(src)
	dirs, err := lowerDocument(Parse(body))
	if err != nil {
		return nil, err
	}
	text, err := renderDirectives(fixLineBreaks(dirs))
	if err != nil {
		return nil, err
	}
	// Blank-line directives trapped before trailing prefix pops can leave
	// a blank last line; the file still ends with exactly one newline.
	text = strings.TrimRight(text, "\n") + "\n"
	if len(front) == 0 {
		return []byte(text), nil
	}
	out := make([]byte, 0, len(front)+len(text))
	out = append(out, front...)
	out = append(out, text...)
	return out, nil
}
