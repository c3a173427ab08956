package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextFromContentStream(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "Tj operator",
			stream: "BT\n/F1 12 Tf\n72 720 Td\n(Hello world) Tj\nET",
			want:   "Hello world",
		},
		{
			name:   "TJ array",
			stream: "BT\n[(Hel) -20 (lo)] TJ\nET",
			want:   "Hello",
		},
		{
			name:   "quote operator starts new line",
			stream: "BT\n(first) Tj\n(second) '\nET",
			want:   "first second",
		},
		{
			name:   "escaped parentheses",
			stream: `BT` + "\n" + `(balanced \(pair\)) Tj` + "\n" + `ET`,
			want:   "balanced (pair)",
		},
		{
			name:   "octal escape",
			stream: "BT\n(A\\040B) Tj\nET",
			want:   "A B",
		},
		{
			name:   "no text operators",
			stream: "q\n1 0 0 1 0 0 cm\nQ",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textFromContentStream([]byte(tt.stream))
			if got != tt.want {
				t.Errorf("textFromContentStream() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnescapePDFString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`plain`, "plain"},
		{`tab\there`, "tab\there"},
		{`back\\slash`, `back\slash`},
		{`\050paren\051`, "(paren)"},
		{`\101`, "A"},
	}

	for _, tt := range tests {
		if got := unescapePDFString([]byte(tt.raw)); got != tt.want {
			t.Errorf("unescapePDFString(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// buildTextPDF assembles a minimal uncompressed PDF with one page per entry;
// an empty entry becomes a page without text output.
func buildTextPDF(pages []string) []byte {
	streams := make([]string, len(pages))
	for i, text := range pages {
		if text == "" {
			continue
		}
		escaped := strings.ReplaceAll(text, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, "(", `\(`)
		escaped = strings.ReplaceAll(escaped, ")", `\)`)
		streams[i] = "BT\n/F1 12 Tf\n72 720 Td\n(" + escaped + ") Tj\nET"
	}

	n := len(pages)
	fontObj := 3 + 2*n
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, fontObj+1)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, n)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n)

	for i := range pages {
		pageObj := 3 + 2*i
		contentObj := 4 + 2*i

		offsets[pageObj] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n",
			pageObj, contentObj, fontObj)

		offsets[contentObj] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(streams[i]), streams[i])
	}

	offsets[fontObj] = b.Len()
	fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontObj)

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", fontObj+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= fontObj; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		fontObj+1, xrefOffset)

	return []byte(b.String())
}

func TestExtractPDFText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	raw := buildTextPDF([]string{"Alpha page one", "Beta page two"})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	text, err := extractPDFText(path)
	if err != nil {
		t.Fatalf("extractPDFText() error = %v", err)
	}

	alpha := strings.Index(text, "Alpha page one")
	beta := strings.Index(text, "Beta page two")
	if alpha < 0 || beta < 0 {
		t.Fatalf("extractPDFText() = %q, want both page texts", text)
	}
	if alpha > beta {
		t.Error("extractPDFText() pages out of order")
	}
	if !strings.Contains(text, "\n\n") {
		t.Errorf("extractPDFText() = %q, want blank-line page separator", text)
	}
}

func TestExtractPDFTextEmptyPage(t *testing.T) {
	// A page with no text layer keeps its (empty) slot in the join.
	path := filepath.Join(t.TempDir(), "gaps.pdf")
	raw := buildTextPDF([]string{"Only page with text", ""})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	text, err := extractPDFText(path)
	if err != nil {
		t.Fatalf("extractPDFText() error = %v", err)
	}
	if !strings.Contains(text, "Only page with text") {
		t.Fatalf("extractPDFText() = %q, want text from first page", text)
	}
}

func TestExtractPDFTextCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := extractPDFText(path); err == nil {
		t.Error("extractPDFText() expected error for corrupt file")
	}
}
