// Command docbridge converts HTML, Markdown and DOCX into Google Docs
// batchUpdate requests, pushes them to a document, and extracts text back
// out of Docs JSON.
//
//	docbridge convert page.html > requests.json
//	docbridge inspect notes.md
//	docbridge push --append 1AbC... notes.md
//	docbridge extract document.json
//	docbridge docx text report.docx
//	docbridge config init
package main
