package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"StockPulse/internal/analysis"
)

// NewServer registers every engine tool on a new MCP server.
func NewServer(name, version string, engine analysis.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(stockPriceTool(), handleStockPrice(engine))
	s.AddTool(technicalIndicatorsTool(), handleTechnicalIndicators(engine))
	s.AddTool(momentumTool(), handleMomentum(engine))
	s.AddTool(volumeTool(), handleVolume(engine))
	s.AddTool(listIndicatorsTool(), handleListIndicators(engine))
	s.AddTool(checkStatusTool(), handleCheckStatus(engine))
	return s
}
