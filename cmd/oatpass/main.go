package main

import (
	"fmt"
	"os"

	"github.com/oatpass/oatpass-go/cmd/oatpass/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
