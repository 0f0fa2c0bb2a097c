package mdformat

// Block is one block-level node of the parsed document tree. The tree is
// read-only input to lowering; it is built once by Parse and never mutated.
type Block interface {
	block()
}

// Header is a heading with inline spans and a level between 1 and 6.
type Header struct {
	Spans []Span
	Level int
}

// Paragraph is a run of inline spans.
type Paragraph struct {
	Spans []Span
}

// Blockquote holds nested blocks.
type Blockquote struct {
	Blocks []Block
}

// CodeBlock is a literal code block. Fenced blocks carry the info string
// written after the opening fence; indented blocks have neither fence nor
// info. Text never ends with a newline.
type CodeBlock struct {
	Text   string
	Info   string
	Fenced bool
}

// OrderedList is a numbered list. Marker is the declared start index as it
// appeared in the source; lowering requires it to parse as a base-10
// integer and fails on anything else.
type OrderedList struct {
	Items  []ListItem
	Marker string
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	Items []ListItem
}

// RawBlock is a construct the formatter does not support, such as a raw
// HTML block. Lowering fails fast when it encounters one.
type RawBlock struct {
	Text string
}

// Rule is a horizontal rule.
type Rule struct{}

func (Header) block()        {}
func (Paragraph) block()     {}
func (Blockquote) block()    {}
func (CodeBlock) block()     {}
func (OrderedList) block()   {}
func (UnorderedList) block() {}
func (RawBlock) block()      {}
func (Rule) block()          {}

// ListItem holds either a simple span sequence or a nested block sequence.
// When Blocks is non-empty the item is lowered as blocks; otherwise Spans
// is lowered inline.
type ListItem struct {
	Spans  []Span
	Blocks []Block
}

// Span is one inline node.
type Span interface {
	span()
}

// LineBreak is an author-forced hard line break.
type LineBreak struct{}

// Text is plain inline text. Soft line breaks in the source are already
// joined into the text as spaces.
type Text struct {
	Text string
}

// Code is an inline code span.
type Code struct {
	Text string
}

// Link is an inline link.
type Link struct {
	Text  string
	URL   string
	Title string
}

// Image is an inline image reference.
type Image struct {
	Alt   string
	URL   string
	Title string
}

// Emphasis wraps nested spans in single emphasis.
type Emphasis struct {
	Spans []Span
}

// Strong wraps nested spans in strong emphasis.
type Strong struct {
	Spans []Span
}

func (LineBreak) span() {}
func (Text) span()      {}
func (Code) span()      {}
func (Link) span()      {}
func (Image) span()     {}
func (Emphasis) span()  {}
func (Strong) span()    {}
