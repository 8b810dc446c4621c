// Package mcp exposes dice rolling as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rollcraft/rollcraft/internal/dice"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Rollcraft MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// RollDiceInput represents the MCP tool input for rolling dice.
type RollDiceInput struct {
	Tokens []string `json:"tokens" jsonschema:"dice tokens such as 2d6, d20, or 8"`
}

// TokenOutcome represents one token's result in the MCP tool output.
// Exactly one of Values/Error is populated.
type TokenOutcome struct {
	Token  string `json:"token" jsonschema:"the token as given"`
	Values []uint `json:"values,omitempty" jsonschema:"individual die values in roll order"`
	Total  uint   `json:"total" jsonschema:"sum of the die values"`
	Error  string `json:"error,omitempty" jsonschema:"parse error for malformed tokens"`
}

// RollDiceResult represents the MCP tool output for rolling dice.
type RollDiceResult struct {
	Rolls []TokenOutcome `json:"rolls" jsonschema:"per-token outcomes in input order"`
	Total uint           `json:"total" jsonschema:"sum across all successfully rolled tokens"`
}

// New creates a configured MCP server backed by the provided generator.
func New(gen dice.Generator) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, rollDiceTool(), rollDiceHandler(gen))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve runs the MCP server on stdio until the context is canceled or the
// client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// rollDiceTool defines the MCP tool schema for dice rolls.
func rollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls dice described by NdM tokens (2d6, d20, 8) and reports each token's values and total. Malformed tokens are reported per token instead of failing the call.",
	}
}

// rollDiceHandler parses each token and simulates it against the generator.
func rollDiceHandler(gen dice.Generator) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		if len(input.Tokens) == 0 {
			return nil, RollDiceResult{}, fmt.Errorf("at least one token is required")
		}

		result := RollDiceResult{Rolls: make([]TokenOutcome, 0, len(input.Tokens))}
		for _, parsed := range dice.ParseTokens(input.Tokens) {
			if parsed.Err != nil {
				result.Rolls = append(result.Rolls, TokenOutcome{
					Token: parsed.Token,
					Error: parsed.Err.Error(),
				})
				continue
			}

			outcome := parsed.Spec.Result(gen)
			result.Rolls = append(result.Rolls, TokenOutcome{
				Token:  parsed.Token,
				Values: outcome,
				Total:  outcome.Total(),
			})
			result.Total += outcome.Total()
		}

		return nil, result, nil
	}
}
