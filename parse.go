package mdformat

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse tokenizes Markdown source into the supported block/span tree.
// Goldmark does the actual parsing; this adapter converts its AST into the
// closed node set the formatter understands. Unsupported constructs are
// carried through as RawBlock so lowering can fail on them with context.
func Parse(src []byte) []Block {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	return convertBlocks(doc, src)
}

func convertBlocks(parent ast.Node, src []byte) []Block {
	var blocks []Block
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		blocks = append(blocks, convertBlock(c, src))
	}
	return blocks
}

func convertBlock(node ast.Node, src []byte) Block {
	switch n := node.(type) {
	case *ast.Heading:
		return Header{Spans: convertInlines(n, src), Level: n.Level}
	case *ast.Paragraph:
		return Paragraph{Spans: convertInlines(n, src)}
	case *ast.TextBlock:
		return Paragraph{Spans: convertInlines(n, src)}
	case *ast.Blockquote:
		return Blockquote{Blocks: convertBlocks(n, src)}
	case *ast.CodeBlock:
		return CodeBlock{Text: blockText(n, src)}
	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(src))
		}
		return CodeBlock{Text: blockText(n, src), Info: info, Fenced: true}
	case *ast.List:
		return convertList(n, src)
	case *ast.ThematicBreak:
		return Rule{}
	case *ast.HTMLBlock:
		return RawBlock{Text: blockText(n, src)}
	default:
		return RawBlock{Text: blockText(node, src)}
	}
}

// blockText joins a block node's source lines, without the final newline.
func blockText(node ast.Node, src []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func convertList(n *ast.List, src []byte) Block {
	var items []ListItem
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, convertListItem(item, src))
	}
	if n.IsOrdered() {
		return OrderedList{Items: items, Marker: strconv.Itoa(n.Start)}
	}
	return UnorderedList{Items: items}
}

// convertListItem keeps a tight single-text item as a plain span sequence;
// anything richer becomes a nested block sequence.
func convertListItem(item *ast.ListItem, src []byte) ListItem {
	first := item.FirstChild()
	if first != nil && first.NextSibling() == nil {
		if _, ok := first.(*ast.TextBlock); ok {
			return ListItem{Spans: convertInlines(first, src)}
		}
	}
	return ListItem{Blocks: convertBlocks(item, src)}
}

func convertInlines(parent ast.Node, src []byte) []Span {
	var spans []Span
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		spans = appendInline(spans, c, src)
	}
	return spans
}

func appendInline(spans []Span, node ast.Node, src []byte) []Span {
	switch n := node.(type) {
	case *ast.Text:
		spans = appendText(spans, string(n.Segment.Value(src)))
		if n.HardLineBreak() {
			spans = append(spans, LineBreak{})
		} else if n.SoftLineBreak() {
			// Soft line breaks join source lines into one run of prose.
			spans = appendText(spans, " ")
		}
	case *ast.String:
		spans = appendText(spans, string(n.Value))
	case *ast.CodeSpan:
		spans = append(spans, Code{Text: codeSpanText(n, src)})
	case *ast.Link:
		spans = append(spans, Link{
			Text:  flattenText(n, src),
			URL:   string(n.Destination),
			Title: string(n.Title),
		})
	case *ast.AutoLink:
		url := string(n.URL(src))
		spans = append(spans, Link{Text: url, URL: url})
	case *ast.Image:
		spans = append(spans, Image{
			Alt:   flattenText(n, src),
			URL:   string(n.Destination),
			Title: string(n.Title),
		})
	case *ast.Emphasis:
		inner := convertInlines(n, src)
		if n.Level == 1 {
			spans = append(spans, Emphasis{Spans: inner})
		} else {
			spans = append(spans, Strong{Spans: inner})
		}
	case *ast.RawHTML:
		spans = appendText(spans, segmentsText(n.Segments, src))
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			spans = appendInline(spans, c, src)
		}
	}
	return spans
}

// appendText merges adjacent plain-text spans so clause splitting later
// sees whole sentences.
func appendText(spans []Span, s string) []Span {
	if s == "" {
		return spans
	}
	if len(spans) > 0 {
		if t, ok := spans[len(spans)-1].(Text); ok {
			spans[len(spans)-1] = Text{Text: t.Text + s}
			return spans
		}
	}
	return append(spans, Text{Text: s})
}

// codeSpanText collects an inline code span's literal content. Spans that
// cross source lines have their newlines replaced by spaces, since a text
// run may not contain a line break.
func codeSpanText(node *ast.CodeSpan, src []byte) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}

func segmentsText(segments *text.Segments, src []byte) string {
	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}

// flattenText reduces a node's inline children to their plain text, for
// link labels and image alt text.
func flattenText(node ast.Node, src []byte) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(src))
		case *ast.String:
			sb.Write(n.Value)
		default:
			sb.WriteString(flattenText(c, src))
		}
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}
