package mdformat

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	docs := []string{
		"plain prose\n",
		"# Header\n\nwith text, tabs\tand\r\nCRLF line endings\n",
		"unicode: åäö 漢字 emoji 🚀\n",
	}
	for _, doc := range docs {
		if err := ValidateInput([]byte(doc)); err != nil {
			t.Fatalf("rejected %q: %v", doc, err)
		}
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsNUL(t *testing.T) {
	err := ValidateInput([]byte("text\x00more"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	src := append(bytes.Repeat([]byte{0x01}, 8), []byte(strings.Repeat("a", 56))...)
	err := ValidateInput(src)
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputToleratesSmallControlSamples(t *testing.T) {
	// Below the sample threshold a stray control byte is not enough
	// evidence to call the input binary.
	if err := ValidateInput([]byte("a\x01b")); err != nil {
		t.Fatalf("rejected short input: %v", err)
	}
}

func TestValidateInputEmpty(t *testing.T) {
	if err := ValidateInput(nil); err != nil {
		t.Fatalf("rejected empty input: %v", err)
	}
}
