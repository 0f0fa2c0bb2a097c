package mdformat

import (
	"errors"
	"strings"
	"testing"
)

func format(t *testing.T, src string) string {
	t.Helper()
	out, err := Format([]byte(src))
	if err != nil {
		t.Fatalf("format %q: %v", src, err)
	}
	return string(out)
}

func TestFormatHeaders(t *testing.T) {
	got := format(t, "# H1\n\ntext\n\n## H2\n\ntext\n\n###     H3\n")
	want := "H1\n==\n\ntext\n\nH2\n--\n\ntext\n\n### H3\n"
	if got != want {
		t.Fatalf("headers:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatHeaderUnderlineLength(t *testing.T) {
	got := format(t, "# A longer, header title\n")
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least two lines, got %q", got)
	}
	if len(lines[1]) != len(lines[0]) {
		t.Fatalf("underline %d chars for %d-char header: %q", len(lines[1]), len(lines[0]), got)
	}
	if strings.Trim(lines[1], "=") != "" {
		t.Fatalf("expected = underline, got %q", lines[1])
	}
}

func TestFormatClauseBreaks(t *testing.T) {
	got := format(t, "Hello, world? Yes: no; done.\n")
	want := "Hello,\nworld?\nYes:\nno;\ndone.\n"
	if got != want {
		t.Fatalf("clause breaks:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatUnorderedListHangingIndent(t *testing.T) {
	got := format(t, "* first item, with continuation\n* second\n")
	want := "*   first item,\n    with continuation\n*   second\n"
	if got != want {
		t.Fatalf("hanging indent:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatOrderedListKeepsStartIndex(t *testing.T) {
	got := format(t, "2. a\n3. b\n")
	want := "2.  a\n3.  b\n"
	if got != want {
		t.Fatalf("ordered list:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatLongInlineCodeGetsOwnLine(t *testing.T) {
	code := strings.Repeat("a", codeWrapLength+5)
	got := format(t, "before `"+code+"` after\n")
	want := "before\n`" + code + "`\nafter\n"
	if got != want {
		t.Fatalf("long code:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatShortInlineCodeSharesLine(t *testing.T) {
	got := format(t, "before `x` after\n")
	want := "before `x` after\n"
	if got != want {
		t.Fatalf("short code:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatLinkOnOwnLine(t *testing.T) {
	got := format(t, "See [site](https://example.com \"a title\") now\n")
	want := "See\n[site](https://example.com \"a title\")\nnow\n"
	if got != want {
		t.Fatalf("link:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatBlockquote(t *testing.T) {
	got := format(t, "> quoted, text.\n")
	want := "> quoted,\n> text.\n"
	if got != want {
		t.Fatalf("blockquote:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatFencedCodePreservedVerbatim(t *testing.T) {
	src := "```go\nx, y := 1, 2 // no, clause. breaks!\n\n  indented\n```\n"
	got := format(t, src)
	want := "```go\nx, y := 1, 2 // no, clause. breaks!\n\n  indented\n```\n"
	if got != want {
		t.Fatalf("fenced code:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatIndentedCodePreservedVerbatim(t *testing.T) {
	got := format(t, "    x := 1\n    if y { z() }\n")
	want := "    x := 1\n    if y { z() }\n"
	if got != want {
		t.Fatalf("indented code:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatHorizontalRule(t *testing.T) {
	got := format(t, "a\n\n---\n\nb\n")
	want := "a\n\n" + strings.Repeat("-", wrapWidth) + "\n\nb\n"
	if got != want {
		t.Fatalf("rule:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatBlankLineCap(t *testing.T) {
	got := format(t, "a\n\n\n\n\nb\n")
	if got != "a\n\nb\n" {
		t.Fatalf("blank collapse:\ngot %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("three consecutive newlines in %q", got)
	}
}

func TestFormatWidthBound(t *testing.T) {
	src := strings.TrimSpace(strings.Repeat("some prose `go` ", 30)) + "\n"
	got := format(t, src)
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if visibleWidth(line) > wrapWidth {
			t.Fatalf("line exceeds %d columns: %q", wrapWidth, line)
		}
	}
}

func TestFormatRawHTMLBlockUnsupported(t *testing.T) {
	_, err := Format([]byte("<div>\nhello\n</div>\n"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestFormatRejectsBinaryInput(t *testing.T) {
	_, err := Format([]byte("hello\x00world"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestFormatRejectsInvalidUTF8(t *testing.T) {
	_, err := Format([]byte{0xff, 0xfe})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestFormatFrontMatterVerbatim(t *testing.T) {
	got := format(t, "---\ntitle: My Doc\ndraft = false\n---\n\n# H\n")
	want := "---\ntitle: My Doc\ndraft = false\n---\nH\n=\n"
	if got != want {
		t.Fatalf("frontmatter:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	docs := []string{
		"# Title\n\nSome, punctuated? prose.\n",
		"* first item, with continuation\n* second\n",
		"2. a\n3. b\n",
		"- a\n  - b\n",
		"> Quoted, text.\n",
		"    x := 1\n    y\n",
		"```go\ncode, here.\n```\n",
		"See [site](https://example.com) now\n",
		"a\n\n---\n\nb\n",
		"---\ntitle: x\n---\n\nBody, text.\n",
		"Use `short` and\n`averyverylongcodespantoken` in text.\n",
	}
	for _, doc := range docs {
		once := format(t, doc)
		twice := format(t, once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\nonce  %q\ntwice %q", doc, once, twice)
		}
	}
}

func TestFormatEndsWithSingleNewline(t *testing.T) {
	docs := []string{
		"text\n",
		"# H\n",
		"* a\n",
		"text\n\n\n",
	}
	for _, doc := range docs {
		got := format(t, doc)
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Fatalf("expected single trailing newline for %q, got %q", doc, got)
		}
	}
}
