// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/talus/cli"
)

var version string

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	cli.Execute(ctx, version)
}
