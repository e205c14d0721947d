// Package mcpserver exposes the summarization service as an MCP tool so
// agent runtimes can call it over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sweetpotato0/condense/engine"
	"github.com/sweetpotato0/condense/service"
)

// NewServer builds the MCP server over the given service.
func NewServer(svc *service.Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "condense",
		Version: version,
		Title:   "condense text summarizer",
	}, nil)

	addSummarizeTool(server, svc)
	return server
}

func addSummarizeTool(server *mcp.Server, svc *service.Service) {
	type args struct {
		Text      string `json:"text,omitempty" jsonschema:"Plain text to summarize; mutually exclusive with url"`
		URL       string `json:"url,omitempty" jsonschema:"Article URL to fetch and summarize; mutually exclusive with text"`
		Model     string `json:"model,omitempty" jsonschema:"Model identifier override"`
		MaxTokens int    `json:"max_tokens,omitempty" jsonschema:"Upper bound on summary tokens"`
		MinTokens int    `json:"min_tokens,omitempty" jsonschema:"Lower bound on summary tokens"`
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarize long text or the main content of a web page",
	}, func(ctx context.Context, req *mcp.CallToolRequest, a args) (*mcp.CallToolResult, any, error) {
		res, err := svc.Summarize(ctx, service.Request{
			Text:      a.Text,
			URL:       a.URL,
			Model:     a.Model,
			MaxTokens: a.MaxTokens,
			MinTokens: a.MinTokens,
		})
		if err != nil {
			if errors.Is(err, engine.ErrTextTooShort) || errors.Is(err, service.ErrBadRequest) {
				return nil, nil, err
			}
			return nil, nil, fmt.Errorf("summarization failed: %w", err)
		}

		var sb strings.Builder
		sb.WriteString(res.Summary)
		if res.Notice != "" {
			sb.WriteString("\n\nNotice: ")
			sb.WriteString(res.Notice)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: sb.String()},
			},
		}, nil, nil
	})
}
