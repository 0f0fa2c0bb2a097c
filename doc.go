// Package mdformat reformats Markdown into a canonical, hard-wrapped form.
//
// The formatter runs a three-stage pipeline: the parsed block/span tree is
// lowered into a flat sequence of layout directives, a greedy reflow pass
// resolves every optional break point against an 80-column budget with a
// one-chunk lookahead, and a stateful renderer turns the resolved stream
// into text while maintaining a stack of indentation prefixes and
// collapsing blank-line runs.
//
// Core properties:
//   - Clause punctuation (, ? ! : ; .) always ends a line, so output
//     follows the semantic line break style and stays diff-stable
//   - Code spans, code blocks, and link targets are never reflowed
//   - Output is idempotent: formatting formatted output changes nothing
//
// Example:
//
//	out, err := mdformat.Format([]byte("# Hello\n\nMarkdown in, canonical Markdown out.\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(out)
//
// Wrap width and the inline-code wrap threshold are fixed constants; there
// is no runtime configuration.
package mdformat
