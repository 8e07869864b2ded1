// Package mcptools exposes the analysis engine as MCP tools.
package mcptools

import "github.com/mark3labs/mcp-go/mcp"

func stockPriceTool() mcp.Tool {
	return mcp.NewTool("get_stock_price",
		mcp.WithDescription("Latest daily price, volume and 30 day range of a US stock or ETF"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. AAPL"),
		),
	)
}

func technicalIndicatorsTool() mcp.Tool {
	return mcp.NewTool("get_technical_indicators",
		mcp.WithDescription("Compute technical indicators (SMA, EMA, RSI, MACD, VWAP, OBV, Volume_Ratio, Volume_MA)"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. MSFT"),
		),
		mcp.WithString("indicators",
			mcp.Description("Comma separated indicator names (default: SMA,EMA,RSI,MACD)"),
		),
		mcp.WithString("time_period",
			mcp.Description("Analysis period such as 90d, 6m or 1y (default: 365d)"),
		),
	)
}

func momentumTool() mcp.Tool {
	return mcp.NewTool("get_momentum_analysis",
		mcp.WithDescription("0-100 momentum score with rating, factor breakdown and recommendation"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. NVDA"),
		),
		mcp.WithString("time_period",
			mcp.Description("Analysis period (default: 180d)"),
		),
	)
}

func volumeTool() mcp.Tool {
	return mcp.NewTool("get_volume_analysis",
		mcp.WithDescription("Volume trend, VWAP position and OBV trend with a short narrative"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Ticker symbol, e.g. TSLA"),
		),
		mcp.WithString("time_period",
			mcp.Description("Analysis period (default: 365d)"),
		),
	)
}

func listIndicatorsTool() mcp.Tool {
	return mcp.NewTool("list_available_indicators",
		mcp.WithDescription("List every indicator the engine can compute"),
	)
}

func checkStatusTool() mcp.Tool {
	return mcp.NewTool("check_status",
		mcp.WithDescription("Probe the market data provider"),
	)
}
