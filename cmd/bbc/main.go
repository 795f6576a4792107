package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/root"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
