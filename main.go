package main

import (
	"fmt"
	"os"

	"github.com/mlefebvre/bookcatalog/internal/config"
	"github.com/mlefebvre/bookcatalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
	fmt.Fprintln(os.Stderr, "Usage: bookcatalog [serve]")
	os.Exit(1)
}
