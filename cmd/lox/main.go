package main

import (
	"os"

	"github.com/chidiwilliams/lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
