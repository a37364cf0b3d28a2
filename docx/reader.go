// Package docx reads and writes the text of DOCX (Office Open XML) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const documentPart = "word/document.xml"

// ErrNotDOCX is returned for input that is not a DOCX package.
var ErrNotDOCX = errors.New("docx: not a DOCX document")

// Open reads a DOCX file and returns its text.
func Open(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return ExtractText(data)
}

// ExtractText returns the text of the body paragraphs of a DOCX package,
// joined by newlines. Tabs and line breaks inside a paragraph are kept.
func ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDOCX, err)
	}
	if err := validate(zr); err != nil {
		return "", err
	}

	rc, err := zr.Open(documentPart)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	paragraphs, err := bodyParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// validate checks that the parts every DOCX package carries are present.
func validate(zr *zip.Reader) error {
	required := map[string]bool{
		"[Content_Types].xml": false,
		documentPart:          false,
	}
	for _, f := range zr.File {
		if _, ok := required[f.Name]; ok {
			required[f.Name] = true
		}
	}
	for name, found := range required {
		if !found {
			return fmt.Errorf("%w: missing %s", ErrNotDOCX, name)
		}
	}
	return nil
}

// bodyParagraphs streams document.xml and collects the text of each
// paragraph that is a direct child of the body. Table cells and text boxes
// are not part of the body flow.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inPara     bool
	)

	parent := func() string {
		if len(stack) < 2 {
			return ""
		}
		return stack[len(stack)-2]
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if !inPara {
				if t.Name.Local == "p" && parent() == "body" {
					inPara = true
					current.Reset()
				}
				continue
			}
			if parent() != "r" {
				continue
			}
			switch t.Name.Local {
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}

		case xml.EndElement:
			if inPara && t.Name.Local == "p" && parent() == "body" {
				paragraphs = append(paragraphs, current.String())
				inPara = false
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if inPara && len(stack) > 0 && stack[len(stack)-1] == "t" {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
