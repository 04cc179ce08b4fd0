package main

import (
	"os"

	"github.com/charliek/cwlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
