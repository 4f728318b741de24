package main

import (
	"context"
	"os"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
