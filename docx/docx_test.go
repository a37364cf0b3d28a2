package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// makeDOCX builds a minimal package around a document body.
func makeDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   documentHeader + body + documentFooter,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Write(%s) error = %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "paragraphs",
			body: `<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t xml:space="preserve"> world</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`,
			want: "Hello world\nSecond",
		},
		{
			name: "empty paragraph",
			body: `<w:p><w:r><w:t>a</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>b</w:t></w:r></w:p>`,
			want: "a\n\nb",
		},
		{
			name: "tabs and breaks",
			body: `<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			want: "a\tb\nc",
		},
		{
			name: "tables skipped",
			body: `<w:p><w:r><w:t>before</w:t></w:r></w:p><w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl><w:p><w:r><w:t>after</w:t></w:r></w:p>`,
			want: "before\nafter",
		},
		{
			name: "escaped",
			body: `<w:p><w:r><w:t>a &amp; b &lt;c&gt;</w:t></w:r></w:p>`,
			want: "a & b <c>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(makeDOCX(t, tt.body))
			if err != nil {
				t.Fatalf("ExtractText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractText_NotDOCX(t *testing.T) {
	if _, err := ExtractText([]byte("plain text")); !errors.Is(err, ErrNotDOCX) {
		t.Errorf("ExtractText(text) error = %v, want ErrNotDOCX", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("mimetype"); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	if _, err := ExtractText(buf.Bytes()); !errors.Is(err, ErrNotDOCX) {
		t.Errorf("ExtractText(zip) error = %v, want ErrNotDOCX", err)
	}
}

func TestFromText_RoundTrip(t *testing.T) {
	tests := []string{
		"single line",
		"first\nsecond\nthird",
		"tab\tseparated & <escaped>",
		"ünïcödé 😀",
	}

	for _, text := range tests {
		data, err := FromText(text)
		if err != nil {
			t.Fatalf("FromText(%q) error = %v", text, err)
		}
		got, err := ExtractText(data)
		if err != nil {
			t.Fatalf("ExtractText() error = %v", err)
		}
		if got != text {
			t.Errorf("round trip = %q, want %q", got, text)
		}
	}
}

func TestFromText_BlankLines(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a\n\nb", "a\nb"},
		{"a\n\n\nb", "a\n\nb"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"a\r\n\r\nb", "a\nb"},
		{"a\n", "a\n"},
	}

	for _, tt := range tests {
		data, err := FromText(tt.text)
		if err != nil {
			t.Fatalf("FromText(%q) error = %v", tt.text, err)
		}
		got, err := ExtractText(data)
		if err != nil {
			t.Fatalf("ExtractText() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("FromText(%q) extracted %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFromText_CRLF(t *testing.T) {
	data, err := FromText("a\r\nb")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	got, _ := ExtractText(data)
	if got != "a\nb" {
		t.Errorf("ExtractText() = %q, want %q", got, "a\nb")
	}
}

func TestOpen(t *testing.T) {
	data, err := FromText("from disk")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got != "from disk" {
		t.Errorf("Open() = %q", got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.docx")); err == nil {
		t.Error("Open() expected error for missing file")
	}
}
