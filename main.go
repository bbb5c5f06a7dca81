package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/251014-go-pkg-renban/internal/command/expand"
)

func main() {
	if err := expand.Command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
