package htmldoc

import (
	"regexp"

	"golang.org/x/net/html"
)

// boilerplateClass matches class and id values used for site chrome.
var boilerplateClass = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|breadcrumbs?|` +
		`site-header|masthead|banner|site-footer|footer|colophon|` +
		`sidebar|widget|cookie-banner|share-buttons)([^a-z]|$)`)

// boilerplateFilter recognizes navigation, sidebars and page-level headers
// and footers in scraped pages.
type boilerplateFilter struct {
	body    *html.Node
	wrapper *html.Node // sole div/main child of body, if any
}

func newBoilerplateFilter(doc *html.Node) *boilerplateFilter {
	f := &boilerplateFilter{body: findElement(doc, "body")}
	if f.body == nil {
		f.body = doc
	}
	f.wrapper = soleWrapper(f.body)
	return f
}

// soleWrapper returns the only structural child of body, as in
// <body><div id="page">...</div></body>.
func soleWrapper(body *html.Node) *html.Node {
	var found *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || shouldSkipElement(c.Data) {
			continue
		}
		if (c.Data != "div" && c.Data != "main") || found != nil {
			return nil
		}
		found = c
	}
	return found
}

func (f *boilerplateFilter) excluded(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	case "header", "footer":
		if f.pageLevel(n) {
			return true
		}
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		if f.pageLevel(n) {
			return true
		}
	}

	for _, key := range []string{"class", "id"} {
		if v := getAttr(n, key); v != "" && boilerplateClass.MatchString(v) {
			return true
		}
	}
	return false
}

// pageLevel reports whether n sits directly under body or its sole wrapper.
// Headers inside articles are content.
func (f *boilerplateFilter) pageLevel(n *html.Node) bool {
	p := n.Parent
	return p != nil && (p == f.body || (f.wrapper != nil && p == f.wrapper))
}
