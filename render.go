package mdformat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariant reports a directive stream that violates the renderer's
// invariants: an unbalanced prefix pop or a blank-line state past two
// newlines. Lowering never produces such a stream.
var ErrInvariant = errors.New("invalid directive stream")

// minRuleWidth is the fallback width of a horizontal rule when the active
// prefixes leave less room than this.
const minRuleWidth = 10

// formatter turns a resolved directive sequence into text. It keeps the
// stack of active line prefixes and counts the newlines emitted since the
// last text; the counter only ever reaches 0, 1, or 2, which is what
// collapses blank-line runs. The counter starts at 2 so a document opening
// with a prefixed block still gets its prefix on the first line.
type formatter struct {
	out      strings.Builder
	prefixes []string
	newlines int
}

func newFormatter() *formatter {
	return &formatter{newlines: 2}
}

func (f *formatter) lf() {
	f.out.WriteByte('\n')
	f.newlines++
}

// write emits the active prefixes first when the cursor sits at the start
// of a line, then the text. An empty write still anchors the line.
func (f *formatter) write(s string) {
	if f.newlines > 0 {
		for _, p := range f.prefixes {
			f.out.WriteString(p)
		}
	}
	f.out.WriteString(s)
	f.newlines = 0
}

func (f *formatter) apply(d Directive) error {
	switch d.Op {
	case opText:
		f.write(d.Text)
	case opSoftBreak:
		// A kept soft break is a space.
		f.write(" ")
	case opHardBreak:
		if f.newlines == 0 {
			f.lf()
		}
	case opBlankLine:
		return f.blankLine()
	case opPushPrefix:
		f.prefixes = append(f.prefixes, d.Text)
	case opPushPrefixFirstLine:
		f.write(d.Text)
		f.prefixes = append(f.prefixes, d.Cont)
	case opPop:
		if len(f.prefixes) == 0 {
			return fmt.Errorf("%w: prefix pop without matching push", ErrInvariant)
		}
		f.prefixes = f.prefixes[:len(f.prefixes)-1]
	case opRule:
		return f.rule()
	default:
		return fmt.Errorf("%w: unknown directive op %d", ErrInvariant, d.Op)
	}
	return nil
}

func (f *formatter) blankLine() error {
	switch f.newlines {
	case 0:
		f.lf()
		f.lf()
	case 1:
		f.lf()
	case 2:
	default:
		return fmt.Errorf("%w: %d consecutive newlines", ErrInvariant, f.newlines)
	}
	return nil
}

// rule writes a dashed separator surrounded by blank lines. The rule fills
// the width left over by the active prefixes, with a narrow fallback when
// the prefixes eat nearly the whole line.
func (f *formatter) rule() error {
	if err := f.blankLine(); err != nil {
		return err
	}
	total := 0
	for _, p := range f.prefixes {
		total += visibleWidth(p)
	}
	width := wrapWidth - total
	if width < minRuleWidth {
		width = minRuleWidth
	}
	f.write(strings.Repeat("-", width))
	f.lf()
	f.lf()
	return nil
}

// renderDirectives consumes a resolved directive sequence and produces the
// final text.
func renderDirectives(dirs []Directive) (string, error) {
	f := newFormatter()
	for _, d := range dirs {
		if err := f.apply(d); err != nil {
			return "", err
		}
	}
	return f.out.String(), nil
}
