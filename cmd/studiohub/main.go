// filepath: cmd/studiohub/main.go
package main

import (
	"studiohub/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
