package main

import (
	"os"

	"github.com/rshetty/carestore/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
