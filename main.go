package main

import (
	"github.com/mj1618/menucli/cmd"

	// Register the macOS accessibility provider.
	_ "github.com/mj1618/menucli/internal/ax/darwin"
)

func main() {
	cmd.Execute()
}
