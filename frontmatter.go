package mdformat

import "bytes"

// splitFrontMatter splits a leading metadata block off the document. The
// block opens with ---, +++, or ;;; on the first line, has a second line
// that looks like metadata, and closes with the same delimiter. It is
// reproduced verbatim ahead of the formatted body; front is nil when the
// document has none, and body is then the whole input.
func splitFrontMatter(src []byte) (front, body []byte) {
	openLine, next, ok := frontMatterLine(src, 0)
	if !ok {
		return nil, src
	}
	delim, isFrontMatter := frontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, src
	}
	secondLine, next, ok := frontMatterLine(src, next)
	if !ok || !metadataLikely(secondLine) {
		return nil, src
	}
	for idx := next; ; {
		line, lineEnd, ok := frontMatterLine(src, idx)
		if !ok {
			return nil, src
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[:lineEnd], src[lineEnd:]
		}
		idx = lineEnd
	}
}

// frontMatterLine returns the line starting at start without its newline,
// the offset just past it, and whether a line exists there.
func frontMatterLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	return trimCR(src[start : start+i]), start + i + 1, true
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

// metadataLikely reports whether a line plausibly opens metadata: a JSON
// bracket or a key separator. A bare delimiter followed by prose is a
// thematic break, not frontmatter.
func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
