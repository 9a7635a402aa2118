// Package main runs the API and website in one container.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/boyalintegrated/boyalintegrated.com/internal/cmd/entrypoint"
)

func main() {
	cfg, err := entrypoint.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BOYAL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := entrypoint.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
