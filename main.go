package main

import (
	"context"
	"fmt"
	"os"

	"relay-notifier/bootstrap"
)

func main() {
	ctx := context.Background()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "relay-notifier failed: %v\n", err)
		os.Exit(1)
	}
}
