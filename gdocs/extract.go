package gdocs

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"google.golang.org/api/docs/v1"
)

// ErrInvalidJSON is returned when Docs JSON cannot be decoded.
var ErrInvalidJSON = errors.New("gdocs: invalid JSON")

var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z0-9$-_@.&+!*(),]|%[0-9a-fA-F]{2})+`)

// Extracted is the plain content of a document.
type Extracted struct {
	Text   string   `json:"text"`
	URLs   []string `json:"urls"`
	Images []string `json:"images"`
}

// envelope accepts a full document, a body, or a bare content list wrapped
// in an object.
type envelope struct {
	Body          *docs.Body                   `json:"body"`
	Content       []*docs.StructuralElement    `json:"content"`
	InlineObjects map[string]docs.InlineObject `json:"inlineObjects"`
}

// Extract reads Docs JSON and returns its text, the URLs mentioned or
// linked in it, and its image sources. The input may be a document, an
// object with a content array, or the content array itself.
func Extract(data []byte) (*Extracted, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrInvalidJSON
	}

	var content []*docs.StructuralElement
	var inline map[string]docs.InlineObject

	if data[0] == '[' {
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, errors.Join(ErrInvalidJSON, err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, errors.Join(ErrInvalidJSON, err)
		}
		content = env.Content
		if env.Body != nil {
			content = env.Body.Content
		}
		inline = env.InlineObjects
	}

	x := &extractor{inline: inline}
	x.content(content)
	return x.result(), nil
}

// ExtractDocument extracts content from a fetched document.
func ExtractDocument(doc *docs.Document) *Extracted {
	x := &extractor{inline: doc.InlineObjects}
	if doc.Body != nil {
		x.content(doc.Body.Content)
	}
	return x.result()
}

type extractor struct {
	inline   map[string]docs.InlineObject
	segments []string
	urls     []string
	images   []string
}

func (x *extractor) content(elems []*docs.StructuralElement) {
	for _, el := range elems {
		switch {
		case el == nil:
		case el.Paragraph != nil:
			x.paragraph(el.Paragraph)
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					x.content(cell.Content)
				}
			}
		}
	}
}

func (x *extractor) paragraph(p *docs.Paragraph) {
	for _, pe := range p.Elements {
		switch {
		case pe.TextRun != nil:
			x.textRun(pe.TextRun)
		case pe.InlineObjectElement != nil:
			x.inlineObject(pe.InlineObjectElement.InlineObjectId)
		}
	}
}

// textRun records a run's URLs and its remaining text.
func (x *extractor) textRun(run *docs.TextRun) {
	if run.TextStyle != nil && run.TextStyle.Link != nil && validURL(run.TextStyle.Link.Url) {
		x.urls = append(x.urls, run.TextStyle.Link.Url)
	}
	if strings.TrimSpace(run.Content) == "" {
		return
	}

	text := run.Content
	for _, u := range urlPattern.FindAllString(text, -1) {
		text = strings.ReplaceAll(text, u, " ")
		if validURL(u) {
			x.urls = append(x.urls, u)
		}
	}
	if clean := strings.Join(strings.Fields(text), " "); clean != "" {
		x.segments = append(x.segments, clean)
	}
}

func (x *extractor) inlineObject(id string) {
	obj, ok := x.inline[id]
	if !ok || obj.InlineObjectProperties == nil {
		return
	}
	embedded := obj.InlineObjectProperties.EmbeddedObject
	if embedded == nil || embedded.ImageProperties == nil {
		return
	}
	if src := embedded.ImageProperties.SourceUri; validURL(src) {
		x.images = append(x.images, src)
	}
}

func (x *extractor) result() *Extracted {
	return &Extracted{
		Text:   strings.TrimSpace(strings.Join(x.segments, " ")),
		URLs:   dedupe(x.urls),
		Images: dedupe(x.images),
	}
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// dedupe removes repeats, keeping first occurrences in order. It never
// returns nil so JSON output has empty arrays.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
