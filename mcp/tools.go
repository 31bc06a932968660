package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mkress81/arbscout/internal/engine"
)

func registerTools(s *server.MCPServer, factory EngineFactory) {
	// search_catalog
	searchTool := mcp.NewTool("search_catalog",
		mcp.WithDescription("Search the product catalog by keyword and return normalized listings"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Search keywords"),
		),
		mcp.WithString("category",
			mcp.Description("Category name (default: All; see the categories config)"),
		),
		mcp.WithNumber("min_price",
			mcp.Description("Minimum price in dollars (ignored for wildcard categories)"),
		),
		mcp.WithNumber("max_price",
			mcp.Description("Maximum price in dollars (ignored for wildcard categories)"),
		),
	)
	s.AddTool(searchTool, makeSearchHandler(factory))

	// lookup_items
	lookupTool := mcp.NewTool("lookup_items",
		mcp.WithDescription("Look up catalog listings by ASIN"),
		mcp.WithString("asins",
			mcp.Required(),
			mcp.Description("Comma-separated list of ASINs"),
		),
	)
	s.AddTool(lookupTool, makeLookupHandler(factory))
}

func makeSearchHandler(factory EngineFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keywords := request.GetString("keywords", "")
		if keywords == "" {
			return mcp.NewToolResultError("keywords is required"), nil
		}
		category := request.GetString("category", "All")
		minPrice := request.GetFloat("min_price", 0)
		maxPrice := request.GetFloat("max_price", 0)

		eng, cats, err := factory()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("engine error: %v", err)), nil
		}

		token, ok := cats.Token(category)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
		}

		req := engine.SearchRequest{
			Keywords:   keywords,
			Categories: []string{token},
			MinPrice:   dollarsToCents(minPrice),
			MaxPrice:   dollarsToCents(maxPrice),
		}
		if err := eng.Submit(req); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("search error: %v", err)), nil
		}

		listings := engine.Drain(eng, nil)
		data, _ := json.MarshalIndent(listings, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeLookupHandler(factory EngineFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := request.GetString("asins", "")
		var asins []string
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				asins = append(asins, a)
			}
		}
		if len(asins) == 0 {
			return mcp.NewToolResultError("asins is required"), nil
		}

		eng, _, err := factory()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("engine error: %v", err)), nil
		}

		if err := eng.Submit(engine.LookupRequest{ASINs: asins}); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("lookup error: %v", err)), nil
		}

		listings := engine.Drain(eng, nil)
		data, _ := json.MarshalIndent(listings, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func dollarsToCents(dollars float64) int64 {
	if dollars <= 0 {
		return 0
	}
	return int64(math.Round(dollars * 100))
}
