package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const (
	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentFooter = `<w:sectPr/></w:body></w:document>`
)

// FromText builds a DOCX package with one paragraph per line of text. A
// single blank line only separates paragraphs.
func FromText(text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, text); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a DOCX package with one paragraph per line of text to w.
// Tabs become tab characters within the paragraph.
func Write(w io.Writer, text string) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		body func(io.Writer) error
	}{
		{"[Content_Types].xml", writeString(contentTypesXML)},
		{"_rels/.rels", writeString(packageRelsXML)},
		{documentPart, func(w io.Writer) error { return writeDocument(w, text) }},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if err := p.body(fw); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// splitParagraphs splits text into paragraph lines. A blank line between two
// blocks of text separates them without adding an empty paragraph; any
// further blank lines are kept as empty paragraphs.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, block := range strings.Split(text, "\n\n") {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	return lines
}

func writeDocument(w io.Writer, text string) error {
	var sb strings.Builder
	sb.WriteString(documentHeader)

	for _, line := range splitParagraphs(text) {
		if line == "" {
			sb.WriteString("<w:p/>")
			continue
		}
		sb.WriteString("<w:p><w:r>")
		for i, seg := range strings.Split(line, "\t") {
			if i > 0 {
				sb.WriteString("<w:tab/>")
			}
			if seg == "" {
				continue
			}
			sb.WriteString(`<w:t xml:space="preserve">`)
			if err := xml.EscapeText(&sb, []byte(seg)); err != nil {
				return err
			}
			sb.WriteString("</w:t>")
		}
		sb.WriteString("</w:r></w:p>")
	}

	sb.WriteString(documentFooter)
	_, err := io.WriteString(w, sb.String())
	return err
}
