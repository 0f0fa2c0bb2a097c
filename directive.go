package mdformat

import "strings"

type directiveOp uint8

const (
	// opText is a literal text run. It never contains a line break.
	opText directiveOp = iota
	// opSoftBreak is a candidate wrap point, resolved by the reflow pass
	// to either a space or a hard break.
	opSoftBreak
	// opHardBreak is an unconditional line break, idempotent at line start.
	opHardBreak
	// opBlankLine requests exactly one blank line; runs collapse.
	opBlankLine
	// opPushPrefix prepends its text to every following line until popped.
	opPushPrefix
	// opPushPrefixFirstLine writes its text on the current line and pushes
	// the continuation prefix for the lines below (list markers).
	opPushPrefixFirstLine
	// opPop removes the innermost prefix; must balance a prior push.
	opPop
	// opRule is a full-width dashed separator.
	opRule
)

// Directive is one token of the layout language between lowering and
// rendering. Text carries the literal run for opText, the prefix for
// opPushPrefix, and the first-line text for opPushPrefixFirstLine; Cont is
// the continuation prefix of the latter. Directives compare by value.
type Directive struct {
	Op   directiveOp
	Text string
	Cont string
}

func textRun(s string) Directive    { return Directive{Op: opText, Text: s} }
func softBreak() Directive          { return Directive{Op: opSoftBreak} }
func hardBreak() Directive          { return Directive{Op: opHardBreak} }
func blankLine() Directive          { return Directive{Op: opBlankLine} }
func pushPrefix(p string) Directive { return Directive{Op: opPushPrefix, Text: p} }

func pushFirstLine(f, c string) Directive {
	return Directive{Op: opPushPrefixFirstLine, Text: f, Cont: c}
}
func popPrefix() Directive { return Directive{Op: opPop} }
func ruleBreak() Directive { return Directive{Op: opRule} }

// directiveBuffer accumulates layout directives during lowering.
type directiveBuffer struct {
	dirs []Directive
}

func (b *directiveBuffer) push(d Directive) {
	b.dirs = append(b.dirs, d)
}

// write appends a trimmed text run; empty runs are dropped. Callers must
// not pass text containing a line break.
func (b *directiveBuffer) write(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	b.push(textRun(s))
}

// writeVerbatim appends a text run without trimming. Code block lines go
// through here so their bodies survive character for character; empty runs
// are kept to preserve blank code lines.
func (b *directiveBuffer) writeVerbatim(s string) {
	b.push(textRun(s))
}
