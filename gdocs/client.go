package gdocs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/tsawler/docbridge/model"
)

// DefaultBatchSize is the number of requests sent per batchUpdate call.
const DefaultBatchSize = 500

// ErrNoDocumentID is returned when a call is made without a document ID.
var ErrNoDocumentID = errors.New("gdocs: document ID is required")

// Config describes how to reach the Docs API.
type Config struct {
	CredentialsFile string // service account or OAuth client JSON
	Endpoint        string // overrides the API base URL
	BatchSize       int
	Logger          *slog.Logger
}

// Client submits converted documents to Google Docs.
type Client struct {
	svc       *docs.Service
	logger    *slog.Logger
	batchSize int
}

// NewClient builds a client from cfg. Extra options are passed to the API
// client and take precedence.
func NewClient(ctx context.Context, cfg Config, extra ...option.ClientOption) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(docs.DocumentsScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	opts = append(opts, extra...)

	svc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}
	return NewClientWithService(svc, cfg), nil
}

// NewClientWithService wraps an existing service.
func NewClientWithService(svc *docs.Service, cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	size := cfg.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Client{svc: svc, logger: logger, batchSize: size}
}

// ApplyResult summarizes a submission.
type ApplyResult struct {
	DocumentID string
	Requests   int
	Batches    int
	RevisionID string
}

// Apply sends ops to the document as one or more batchUpdate calls. Ops
// are sent in order, so later batches see the content inserted by earlier
// ones.
func (c *Client) Apply(ctx context.Context, documentID string, ops []model.Op) (*ApplyResult, error) {
	if documentID == "" {
		return nil, ErrNoDocumentID
	}
	reqs := Requests(ops)
	result := &ApplyResult{DocumentID: documentID, Requests: len(reqs)}

	for start := 0; start < len(reqs); start += c.batchSize {
		end := min(start+c.batchSize, len(reqs))
		batch := reqs[start:end]

		c.logger.Debug("sending batch", "document_id", documentID, "from", start, "count", len(batch))
		resp, err := c.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
			Requests: batch,
		}).Context(ctx).Do()
		if err != nil {
			return result, fmt.Errorf("batch update of requests %d-%d: %w", start, end-1, err)
		}
		result.Batches++
		if resp.WriteControl != nil {
			result.RevisionID = resp.WriteControl.RequiredRevisionId
		}
	}

	c.logger.Info("document updated",
		"document_id", documentID,
		"requests", result.Requests,
		"batches", result.Batches)
	return result, nil
}

// Document fetches a document.
func (c *Client) Document(ctx context.Context, documentID string) (*docs.Document, error) {
	if documentID == "" {
		return nil, ErrNoDocumentID
	}
	doc, err := c.svc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting document %s: %w", documentID, err)
	}
	return doc, nil
}

// AppendIndex returns the index at which content can be appended to the
// body: just before the final newline, which Docs never allows deleting.
func (c *Client) AppendIndex(ctx context.Context, documentID string) (int, error) {
	doc, err := c.Document(ctx, documentID)
	if err != nil {
		return 0, err
	}
	return appendIndex(doc), nil
}

func appendIndex(doc *docs.Document) int {
	if doc.Body == nil || len(doc.Body.Content) == 0 {
		return 1
	}
	last := doc.Body.Content[len(doc.Body.Content)-1]
	if last.EndIndex <= 1 {
		return 1
	}
	return int(last.EndIndex) - 1
}
