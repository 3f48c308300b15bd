package parser

import (
	"fmt"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"resume.txt", "*parser.TextParser"},
		{"resume.md", "*parser.MarkdownParser"},
		{"resume.markdown", "*parser.MarkdownParser"},
		{"profile.html", "*parser.HTMLParser"},
		{"profile.htm", "*parser.HTMLParser"},
		{"resume.pdf", "*parser.PDFParser"},
		{"resume.docx", "*parser.DOCXParser"},
		{"RESUME.TXT", "*parser.TextParser"},
	}

	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q) failed: %v", tt.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", p); got != tt.want {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.want)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	for _, filename := range []string{"resume.exe", "resume", "resume.csv", "resume.doc"} {
		if _, err := ForFile(filename); err == nil {
			t.Errorf("ForFile(%q) should have failed", filename)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	supported := []string{"a.txt", "a.md", "a.markdown", "a.html", "a.htm", "a.pdf", "a.docx", "A.PDF"}
	for _, f := range supported {
		if !IsSupportedExtension(f) {
			t.Errorf("expected %q to be supported", f)
		}
	}
	unsupported := []string{"a.exe", "a", "a.doc", "a.png"}
	for _, f := range unsupported {
		if IsSupportedExtension(f) {
			t.Errorf("expected %q to be unsupported", f)
		}
	}
}
