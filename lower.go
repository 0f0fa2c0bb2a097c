package mdformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupported reports a Markdown construct the formatter does not
// handle: raw HTML blocks, non-numeric ordered-list markers, and header
// levels outside 1..6.
var ErrUnsupported = errors.New("unsupported markdown construct")

// codeWrapLength is the inline-code width above which a code span is
// forced onto its own line instead of sharing one with neighboring text.
const codeWrapLength = 20

// clauseDelimiters are the punctuation marks that end a clause. Text is
// hard-broken after each of them regardless of remaining width, so a
// clause never shares a rendered line with the next one.
const clauseDelimiters = ",?!:;."

// lowerDocument flattens a block tree into a directive sequence. The
// sequence preserves the tree's structure and reflowability; no text run
// in it contains a line break.
func lowerDocument(blocks []Block) ([]Directive, error) {
	var b directiveBuffer
	if err := b.lowerBlocks(blocks); err != nil {
		return nil, err
	}
	return b.dirs, nil
}

func (b *directiveBuffer) lowerBlocks(blocks []Block) error {
	for _, block := range blocks {
		switch n := block.(type) {
		case Header:
			if err := b.lowerHeader(n); err != nil {
				return err
			}
		case Paragraph:
			b.lowerSpans(n.Spans)
		case Blockquote:
			b.push(pushPrefix("> "))
			if err := b.lowerBlocks(n.Blocks); err != nil {
				return err
			}
			b.push(popPrefix())
		case CodeBlock:
			b.lowerCodeBlock(n)
		case OrderedList:
			if err := b.lowerOrderedList(n); err != nil {
				return err
			}
		case UnorderedList:
			if err := b.lowerUnorderedList(n); err != nil {
				return err
			}
		case Rule:
			b.push(ruleBreak())
		case RawBlock:
			return fmt.Errorf("%w: raw block", ErrUnsupported)
		default:
			return fmt.Errorf("%w: %T", ErrUnsupported, block)
		}
		b.push(blankLine())
	}
	return nil
}

// lowerHeader renders the header spans to a single line first: level 1 and
// 2 get an underline of = or - sized to the line's visible width, deeper
// levels get a # marker run.
func (b *directiveBuffer) lowerHeader(h Header) error {
	var inner directiveBuffer
	inner.lowerSpans(h.Spans)
	line, err := oneLine(inner.dirs)
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	switch {
	case h.Level == 1 || h.Level == 2:
		underline := "="
		if h.Level == 2 {
			underline = "-"
		}
		b.push(blankLine())
		b.write(line)
		b.push(hardBreak())
		b.write(strings.Repeat(underline, visibleWidth(line)))
		b.push(blankLine())
	case h.Level > 2 && h.Level <= 6:
		b.write(strings.Repeat("#", h.Level) + " " + line)
		b.push(blankLine())
	default:
		return fmt.Errorf("%w: header level %d", ErrUnsupported, h.Level)
	}
	return nil
}

func (b *directiveBuffer) lowerSpans(spans []Span) {
	for _, span := range spans {
		switch n := span.(type) {
		case LineBreak:
			b.write(`\`)
			b.push(hardBreak())
		case Text:
			b.lowerText(n.Text)
		case Code:
			b.lowerCode(n.Text)
		case Link:
			b.push(hardBreak())
			b.write(spanMarkup("", n.Text, n.URL, n.Title))
			b.push(hardBreak())
		case Image:
			b.push(hardBreak())
			b.write(spanMarkup("!", n.Alt, n.URL, n.Title))
			b.push(hardBreak())
		case Emphasis:
			b.write("*")
			b.lowerSpans(n.Spans)
			b.write("*")
		case Strong:
			b.write("__")
			b.lowerSpans(n.Spans)
			b.write("__")
		}
	}
}

// lowerText splits text after every clause delimiter and hard-breaks
// between the chunks.
func (b *directiveBuffer) lowerText(s string) {
	for len(s) > 0 {
		i := strings.IndexAny(s, clauseDelimiters)
		if i < 0 {
			b.write(s)
			return
		}
		b.write(s[:i+1])
		s = s[i+1:]
		if s != "" {
			b.push(hardBreak())
		}
	}
}

// lowerCode emits an inline code span. Spans longer than codeWrapLength
// are flanked by hard breaks so they get their own line; shorter ones get
// soft breaks and may share a line. Backticks in the content are escaped
// along with backslashes; nothing else is touched.
func (b *directiveBuffer) lowerCode(s string) {
	if strings.Contains(s, "`") {
		s = strings.NewReplacer(`\`, `\\`, "`", "\\`").Replace(s)
	}
	wide := visibleWidth(s) > codeWrapLength
	if wide {
		b.push(hardBreak())
	} else {
		b.push(softBreak())
	}
	b.write("`" + s + "`")
	if wide {
		b.push(hardBreak())
	} else {
		b.push(softBreak())
	}
}

// spanMarkup renders a link or image as a single unbreakable run. Text,
// URL, and title are reproduced as-is.
func spanMarkup(bang, text, url, title string) string {
	var sb strings.Builder
	sb.WriteString(bang)
	sb.WriteByte('[')
	sb.WriteString(text)
	sb.WriteString("](")
	sb.WriteString(url)
	if title != "" {
		sb.WriteString(` "`)
		sb.WriteString(title)
		sb.WriteByte('"')
	}
	sb.WriteByte(')')
	return sb.String()
}

func (b *directiveBuffer) lowerCodeBlock(n CodeBlock) {
	if n.Fenced {
		b.write("```" + n.Info)
		b.push(hardBreak())
		for _, line := range strings.Split(n.Text, "\n") {
			b.writeVerbatim(line)
			b.push(hardBreak())
		}
		b.write("```")
		return
	}
	b.push(pushPrefix("    "))
	for _, line := range strings.Split(n.Text, "\n") {
		b.writeVerbatim(line)
		b.push(hardBreak())
	}
	b.push(popPrefix())
}

func (b *directiveBuffer) lowerOrderedList(n OrderedList) error {
	counter, err := strconv.Atoi(strings.TrimSpace(n.Marker))
	if err != nil {
		return fmt.Errorf("%w: ordered list marker %q", ErrUnsupported, n.Marker)
	}
	for _, item := range n.Items {
		marker := fmt.Sprintf("%-4s", strconv.Itoa(counter)+".")
		b.push(pushFirstLine(marker, "    "))
		if err := b.lowerListItem(item); err != nil {
			return err
		}
		b.push(popPrefix())
		b.push(hardBreak())
		counter++
	}
	return nil
}

func (b *directiveBuffer) lowerUnorderedList(n UnorderedList) error {
	for _, item := range n.Items {
		b.push(pushFirstLine("*   ", "    "))
		if err := b.lowerListItem(item); err != nil {
			return err
		}
		b.push(popPrefix())
		b.push(hardBreak())
	}
	return nil
}

func (b *directiveBuffer) lowerListItem(item ListItem) error {
	if len(item.Blocks) > 0 {
		return b.lowerBlocks(item.Blocks)
	}
	b.lowerSpans(item.Spans)
	return nil
}

// oneLine flattens a directive sequence into a single line, turning break
// directives into spaces. Headers lower their spans through here. Only
// text, break, and blank-line directives may appear.
func oneLine(dirs []Directive) (string, error) {
	var sb strings.Builder
	for i, d := range dirs {
		switch d.Op {
		case opText:
			sb.WriteString(d.Text)
		case opSoftBreak, opHardBreak:
			if i < len(dirs)-1 {
				sb.WriteByte(' ')
			}
		case opBlankLine:
		default:
			return "", fmt.Errorf("%w: directive op %d in single-line context", ErrInvariant, d.Op)
		}
	}
	return sb.String(), nil
}
