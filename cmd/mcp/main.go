package main

import (
	"context"

	"github.com/rollcraft/rollcraft/internal/mcp"
	"github.com/rollcraft/rollcraft/internal/platform/config"
	"github.com/rollcraft/rollcraft/internal/random"
	"github.com/rollcraft/rollcraft/internal/tools/roll"
)

func main() {
	cfg, err := roll.ParseConfig()
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	var roller *random.Roller
	if cfg.Seed != nil {
		roller = random.NewRollerFromSeed(*cfg.Seed)
	} else {
		roller, err = random.NewRoller()
		if err != nil {
			config.Exitf("acquire randomness: %v", err)
		}
	}

	server, err := mcp.New(roller.Roll)
	if err != nil {
		config.Exitf("configure MCP server: %v", err)
	}
	if err := server.Serve(context.Background()); err != nil {
		config.Exitf("serve MCP: %v", err)
	}
}
