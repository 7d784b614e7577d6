package cmd

import (
	"context"

	"docsearch/internal/index"
	"docsearch/internal/search"
	"docsearch/internal/watch"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

const (
	serverName    = "AndroidTeamKnowledge"
	serverVersion = "1.0.0"
	toolName      = "search_internal_docs"
)

var flagWatch bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP stdio server exposing search_internal_docs",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if flagWatch {
		w, err := watch.New(a.cfg.DocDir, index.Extensions, a.svc, a.logger)
		if err != nil {
			// Searching still works; only change detection is lost.
			a.logger.Warn("watch disabled", "dir", a.cfg.DocDir, "error", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	a.logger.Info("Server running", "name", serverName, "docs", a.cfg.DocDir)
	return mcpserver.ServeStdio(newServer(a.svc))
}

func init() {
	mcpCmd.Flags().BoolVar(&flagWatch, "watch", false, "clear the index when documents change")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "clear the index when documents change")
	rootCmd.AddCommand(mcpCmd)
}

func newServer(svc *search.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(serverName, serverVersion, mcpserver.WithToolCapabilities(false))
	s.AddTool(searchDocsTool(), makeSearchHandler(svc))
	return s
}

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

func searchDocsTool() mcp.Tool {
	return mcp.NewTool(toolName,
		mcp.WithDescription("Search internal PDF docs for engineering specs and protocols; trigger on mentions of v2s, accessibility, or internal SDK rules."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text query; matched by keyword against document passages"),
		),
	)
}

// makeSearchHandler never returns a tool error: every search outcome,
// including an empty or missing query, is a text result.
func makeSearchHandler(svc *search.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		return mcp.NewToolResultText(svc.Search(ctx, query)), nil
	}
}
