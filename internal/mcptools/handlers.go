package mcptools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"StockPulse/internal/analysis"
)

// Every tool answers with one JSON text block: the report, or {"error", "ticker"}.
func jsonResult(ticker string, v interface{}, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(analysis.EnvelopeJSON(ticker, v, err))),
		},
		IsError: err != nil,
	}
}

func missingTicker() *mcp.CallToolResult {
	return jsonResult("", nil, analysis.ErrEmptyTicker)
}

func handleStockPrice(engine analysis.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || strings.TrimSpace(ticker) == "" {
			return missingTicker(), nil
		}
		res, err := engine.Price(ctx, ticker)
		return jsonResult(ticker, res, err), nil
	}
}

func handleTechnicalIndicators(engine analysis.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || strings.TrimSpace(ticker) == "" {
			return missingTicker(), nil
		}
		var names []string
		for _, n := range strings.Split(request.GetString("indicators", ""), ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		res, err := engine.Indicators(ctx, ticker, names, request.GetString("time_period", ""))
		return jsonResult(ticker, res, err), nil
	}
}

func handleMomentum(engine analysis.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || strings.TrimSpace(ticker) == "" {
			return missingTicker(), nil
		}
		res, err := engine.Momentum(ctx, ticker, request.GetString("time_period", ""))
		return jsonResult(ticker, res, err), nil
	}
}

func handleVolume(engine analysis.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || strings.TrimSpace(ticker) == "" {
			return missingTicker(), nil
		}
		res, err := engine.Volume(ctx, ticker, request.GetString("time_period", ""))
		return jsonResult(ticker, res, err), nil
	}
}

func handleListIndicators(engine analysis.Engine) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult("", engine.ListIndicators(), nil), nil
	}
}

func handleCheckStatus(engine analysis.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult("", engine.Status(ctx), nil), nil
	}
}
