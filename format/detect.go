// Package format detects the kind of input handed to docbridge.
package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML document or fragment.
	HTML
	// Markdown indicates Markdown or plain text.
	Markdown
	// DocsJSON indicates Google Docs API JSON.
	DocsJSON
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
)

// String returns the name used on the command line.
func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Markdown:
		return "markdown"
	case DocsJSON:
		return "docs-json"
	case DOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case DocsJSON:
		return ".json"
	case DOCX:
		return ".docx"
	default:
		return ""
	}
}

// Parse resolves a format name as given on the command line.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html", "htm":
		return HTML, nil
	case "markdown", "md", "text", "txt":
		return Markdown, nil
	case "docs-json", "json":
		return DocsJSON, nil
	case "docx":
		return DOCX, nil
	}
	return Unknown, fmt.Errorf("unknown format %q", name)
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".md", ".markdown", ".mdown", ".txt":
		return Markdown
	case ".json":
		return DocsJSON
	case ".docx":
		return DOCX
	default:
		return Unknown
	}
}

// DetectContent inspects data. Anything that is not recognizably a DOCX
// package, JSON or HTML is treated as Markdown.
func DetectContent(data []byte) Format {
	if isZIP(data) {
		return detectZIPFormat(data)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return Unknown
	}
	switch trimmed[0] {
	case '{', '[':
		return DocsJSON
	case '<':
		return HTML
	}
	return Markdown
}

// DetectFile uses the extension when it is recognized and falls back to
// the content otherwise.
func DetectFile(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectContent(data)
}

func isZIP(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// detectZIPFormat recognizes Word packages among ZIP archives.
func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}
	return Unknown
}
