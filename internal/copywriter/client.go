package copywriter

import (
	"context"
	"encoding/json"
	"fmt"

	pb "github.com/zhang-liz/buildstory/gen/copywriter"
	"github.com/zhang-liz/buildstory/internal/content"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// SectionDraft holds the response from a DraftSection RPC call.
type SectionDraft struct {
	Section content.Section
	Model   string
}

// DocumentDraft holds the response from a DraftDocument RPC call.
type DocumentDraft struct {
	Document content.Document
	Model    string
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the copy-generation service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.CopywriterServiceClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to the copywriter gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewCopywriterServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.CopywriterServiceClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region draft-section
// DraftSection asks the copywriter service for a new rendition of one
// slot's content, targeted at the given segment.
func (c *Client) DraftSection(ctx context.Context, scope, segment, slot, brief string, base content.Section) (SectionDraft, error) {
	resp, err := c.client.DraftSection(ctx, &pb.DraftSectionRequest{
		Scope:           scope,
		Segment:         segment,
		Slot:            slot,
		Brief:           brief,
		BaseContentJson: string(base.Content),
	})
	if err != nil {
		return SectionDraft{}, fmt.Errorf("draft section rpc: %w", err)
	}
	if !json.Valid([]byte(resp.ContentJson)) {
		return SectionDraft{}, fmt.Errorf("draft section: service returned invalid JSON for slot %s", slot)
	}
	return SectionDraft{
		Section: content.Section{Slot: slot, Content: json.RawMessage(resp.ContentJson)},
		Model:   resp.Model,
	}, nil
}
// #endregion draft-section

// #region draft-document
// DraftDocument asks the copywriter service for a full document variant
// targeted at the given segment. The returned document keeps the base
// document's slot order.
func (c *Client) DraftDocument(ctx context.Context, scope, segment, brief string, base content.Document) (DocumentDraft, error) {
	baseJSON, err := json.Marshal(base)
	if err != nil {
		return DocumentDraft{}, fmt.Errorf("draft document: encode base: %w", err)
	}
	resp, err := c.client.DraftDocument(ctx, &pb.DraftDocumentRequest{
		Scope:            scope,
		Segment:          segment,
		Brief:            brief,
		BaseDocumentJson: string(baseJSON),
	})
	if err != nil {
		return DocumentDraft{}, fmt.Errorf("draft document rpc: %w", err)
	}

	var doc content.Document
	if err := json.Unmarshal([]byte(resp.DocumentJson), &doc); err != nil {
		return DocumentDraft{}, fmt.Errorf("draft document: decode response: %w", err)
	}
	doc.Segment = segment
	if err := doc.Validate(); err != nil {
		return DocumentDraft{}, fmt.Errorf("draft document: %w", err)
	}
	return DocumentDraft{Document: doc, Model: resp.Model}, nil
}
// #endregion draft-document
