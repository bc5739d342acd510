// Package main provides the MovieGraph CLI.
//
// Usage:
//
//	moviegraph [flags] <command>
//
// Commands:
//
//	console - interactive menu over the Movies dataset
//	serve   - HTTP API exposing search, detail and graph documents
//	export  - one-shot graph export for a single title
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/moviegraph/moviegraph/cmd/moviegraph/commands"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using config file and defaults")
	}

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
