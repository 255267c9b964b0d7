package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/menu"
	"github.com/mj1618/menucli/internal/output"
	"github.com/mj1618/menucli/internal/version"
)

// mcpServer wraps the MCP server with the accessibility provider and the
// menu tree cache.
type mcpServer struct {
	provider   *ax.Provider
	cache      *mcpTreeCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// mcpConfig holds MCP server configuration.
type mcpConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all menucli
// tools. Permission is not gated here; a server started before
// Accessibility is granted surfaces permission errors per tool call.
func newMCPServer(cfg mcpConfig) (*mcpServer, error) {
	provider, err := ax.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
		cache:    newMCPTreeCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer("menucli", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg mcpConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// apps
	s.mcp.AddTool(
		mcp.NewTool("apps",
			mcp.WithDescription("List running applications with their names, PIDs, and bundle IDs"),
			mcp.WithBoolean("frontmost", mcp.Description("Show only the frontmost application")),
		),
		s.handleApps,
	)

	// menu_list
	s.mcp.AddTool(
		mcp.NewTool("menu_list",
			mcp.WithDescription("List an application's menu items with full paths, enabled/checked state, and keyboard shortcuts"),
			mcp.WithString("app", mcp.Description("Target application: name, PID, or bundle ID (default: frontmost)")),
			mcp.WithNumber("depth", mcp.Description("Maximum recursion depth (0 = unlimited)")),
			mcp.WithBoolean("enabled-only", mcp.Description("Only include enabled (clickable) items")),
			mcp.WithBoolean("include-alternates", mcp.Description("Include Option-key alternate items")),
		),
		s.handleMenuList,
	)

	// menu_search
	s.mcp.AddTool(
		mcp.NewTool("menu_search",
			mcp.WithDescription("Fuzzy-search an application's menu items over their full paths"),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
			mcp.WithString("app", mcp.Description("Target application (default: frontmost)")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 10)")),
			mcp.WithBoolean("exact", mcp.Description("Use exact substring match instead of fuzzy")),
			mcp.WithBoolean("case-sensitive", mcp.Description("Case-sensitive matching")),
		),
		s.handleMenuSearch,
	)

	// menu_state
	s.mcp.AddTool(
		mcp.NewTool("menu_state",
			mcp.WithDescription("Get the enabled/checked/shortcut state of one menu item"),
			mcp.WithString("path", mcp.Description("Menu item path or partial match, e.g. \"File::Save As…\" or \"save as\""), mcp.Required()),
			mcp.WithString("app", mcp.Description("Target application (default: frontmost)")),
		),
		s.handleMenuState,
	)

	// menu_click
	s.mcp.AddTool(
		mcp.NewTool("menu_click",
			mcp.WithDescription("Click (activate) a menu item resolved by path or fuzzy text"),
			mcp.WithString("path", mcp.Description("Menu item path or partial match"), mcp.Required()),
			mcp.WithString("app", mcp.Description("Target application (default: frontmost)")),
			mcp.WithBoolean("exact", mcp.Description("Require exact path match (no fuzzy resolution)")),
			mcp.WithBoolean("dry-run", mcp.Description("Preview the resolved item without clicking")),
		),
		s.handleMenuClick,
	)

	// menu_toggle
	s.mcp.AddTool(
		mcp.NewTool("menu_toggle",
			mcp.WithDescription("Toggle a checkmark menu item and report the observed state change"),
			mcp.WithString("path", mcp.Description("Menu item path or partial match"), mcp.Required()),
			mcp.WithString("app", mcp.Description("Target application (default: frontmost)")),
			mcp.WithBoolean("dry-run", mcp.Description("Show current state without toggling")),
		),
		s.handleMenuToggle,
	)
}

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

// errorText serializes the structured error envelope of a failed tool call.
func errorText(err error) string {
	return resultToText(output.FromError(err))
}

// treeForApp resolves the target application and reads its menu tree
// through the cache. Callers hold providerMu.
func (s *mcpServer) treeForApp(app string, opts menu.TreeOptions) (int, []menu.Node, error) {
	pid, err := ax.ResolveTarget(s.provider.Apps, app)
	if err != nil {
		return 0, nil, err
	}
	nodes, err := s.cache.readTree(s.provider.Roots, pid, opts)
	if err != nil {
		return 0, nil, err
	}
	return pid, nodes, nil
}

func (s *mcpServer) handleApps(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	frontmost := boolParam(params, "frontmost", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	apps, err := s.provider.Apps.RunningApps()
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	if frontmost {
		kept := make([]ax.AppInfo, 0, 1)
		for _, app := range apps {
			if app.Frontmost {
				kept = append(kept, app)
			}
		}
		apps = kept
	}
	return mcp.NewToolResultText(resultToText(apps)), nil
}

func (s *mcpServer) handleMenuList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	depth := intParam(params, "depth", 0)
	enabledOnly := boolParam(params, "enabled-only", false)
	includeAlternates := boolParam(params, "include-alternates", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	_, nodes, err := s.treeForApp(app, menu.TreeOptions{
		MaxDepth:          depth,
		IncludeAlternates: includeAlternates,
	})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	items := menu.Flatten(nodes)
	if enabledOnly {
		kept := items[:0]
		for _, item := range items {
			if item.Enabled {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	return mcp.NewToolResultText(resultToText(output.NewItems(items))), nil
}

func (s *mcpServer) handleMenuSearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	app := stringParam(params, "app", "")
	limit := intParam(params, "limit", 0)
	exact := boolParam(params, "exact", false)
	caseSensitive := boolParam(params, "case-sensitive", false)

	if limit <= 0 {
		limit = menu.DefaultSearchLimit
		if cfg != nil && cfg.Search.Limit > 0 {
			limit = cfg.Search.Limit
		}
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	_, nodes, err := s.treeForApp(app, menu.TreeOptions{})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	results := menu.Search(menu.Flatten(nodes), query, menu.SearchOptions{
		Limit:         limit,
		Exact:         exact,
		CaseSensitive: caseSensitive,
	})
	return mcp.NewToolResultText(resultToText(output.NewSearchResults(results))), nil
}

func (s *mcpServer) handleMenuState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	app := stringParam(params, "app", "")

	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	_, nodes, err := s.treeForApp(app, menu.TreeOptions{})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	node, err := menu.Resolve(nodes, path)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	return mcp.NewToolResultText(resultToText(output.NodeItem(node))), nil
}

func (s *mcpServer) handleMenuClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	app := stringParam(params, "app", "")
	exact := boolParam(params, "exact", false)
	dryRun := boolParam(params, "dry-run", false)

	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	pid, nodes, err := s.treeForApp(app, menu.TreeOptions{})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	resolve := menu.Resolve
	if exact {
		resolve = menu.ResolveExact
	}
	node, err := resolve(nodes, path)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	item := output.NodeItem(node)
	if dryRun {
		return mcp.NewToolResultText(resultToText(item)), nil
	}

	if err := menu.Press(node); err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	s.cache.invalidatePID(pid)

	return mcp.NewToolResultText(resultToText(item)), nil
}

func (s *mcpServer) handleMenuToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	app := stringParam(params, "app", "")
	dryRun := boolParam(params, "dry-run", false)

	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	pid, nodes, err := s.treeForApp(app, menu.TreeOptions{})
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	node, err := menu.Resolve(nodes, path)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	if len(node.Children) > 0 {
		return mcp.NewToolResultError(errorText(&menu.NotToggleableError{Path: node.Path})), nil
	}

	checkedBefore := node.Checked
	if dryRun {
		return mcp.NewToolResultText(resultToText(output.ToggleResult{
			Path:          node.Path,
			CheckedBefore: checkedBefore,
			CheckedAfter:  checkedBefore,
			Confirmed:     true,
			DryRun:        true,
		})), nil
	}

	if err := menu.Press(node); err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}

	// Confirmation reads bypass the cache: they exist to observe fresh
	// state.
	conf := menu.ConfirmToggle(func() ([]menu.Node, error) {
		return menu.BuildTree(s.provider.Roots, pid, menu.TreeOptions{})
	}, node.Path, checkedBefore)
	s.cache.invalidatePID(pid)

	return mcp.NewToolResultText(resultToText(output.ToggleResult{
		Path:          node.Path,
		CheckedBefore: checkedBefore,
		CheckedAfter:  conf.CheckedAfter,
		Confirmed:     conf.Confirmed,
		DryRun:        false,
	})), nil
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that clients may send for app targets
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
