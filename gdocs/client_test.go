package gdocs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/tsawler/docbridge/model"
)

// fakeDocs serves documents.get and documents.batchUpdate.
type fakeDocs struct {
	mu      sync.Mutex
	doc     *docs.Document
	batches [][]*docs.Request
}

func (f *fakeDocs) handler(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
		var req docs.BatchUpdateDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.batches = append(f.batches, req.Requests)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{
			DocumentId:   f.doc.DocumentId,
			Replies:      make([]*docs.Response, len(req.Requests)),
			WriteControl: &docs.WriteControl{RequiredRevisionId: "rev-1"},
		})
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/documents/"):
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.doc)
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, f *fakeDocs, batchSize int) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), Config{BatchSize: batchSize},
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return client
}

func TestClient_Apply(t *testing.T) {
	f := &fakeDocs{doc: &docs.Document{DocumentId: "doc-1"}}
	client := newTestClient(t, f, 2)

	ops := []model.Op{
		model.InsertText(1, "Title"),
		model.UpdateParagraphStyle(model.Range{Start: 1, End: 6}, model.ParagraphStyle{NamedStyle: "HEADING_1"}),
		model.InsertText(6, "\n"),
	}
	res, err := client.Apply(context.Background(), "doc-1", ops)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Requests)
	assert.Equal(t, 2, res.Batches)
	assert.Equal(t, "rev-1", res.RevisionID)

	require.Len(t, f.batches, 2)
	assert.Len(t, f.batches[0], 2)
	assert.Len(t, f.batches[1], 1)
	assert.Equal(t, "Title", f.batches[0][0].InsertText.Text)
	assert.Equal(t, "HEADING_1", f.batches[0][1].UpdateParagraphStyle.ParagraphStyle.NamedStyleType)
	assert.Equal(t, int64(6), f.batches[1][0].InsertText.Location.Index)
}

func TestClient_ApplyRequiresDocumentID(t *testing.T) {
	client := newTestClient(t, &fakeDocs{doc: &docs.Document{}}, 0)

	_, err := client.Apply(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrNoDocumentID)
}

func TestClient_ApplyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"bad index"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), Config{},
		option.WithoutAuthentication(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, err = client.Apply(context.Background(), "doc-1", []model.Op{model.InsertText(1, "x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch update")
}

func TestClient_AppendIndex(t *testing.T) {
	f := &fakeDocs{doc: &docs.Document{
		DocumentId: "doc-1",
		Body: &docs.Body{Content: []*docs.StructuralElement{
			{StartIndex: 0, EndIndex: 1, SectionBreak: &docs.SectionBreak{}},
			{StartIndex: 1, EndIndex: 13, Paragraph: &docs.Paragraph{}},
		}},
	}}
	client := newTestClient(t, f, 0)

	idx, err := client.AppendIndex(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 12, idx)

	assert.Equal(t, 1, appendIndex(&docs.Document{}))
}
