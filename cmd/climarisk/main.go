package main

import (
	"os"

	"github.com/wonny/climarisk/cmd/climarisk/commands"
)

// main is the entry point for the climarisk CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/climarisk [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
