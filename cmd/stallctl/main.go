// Command stallctl drives the stall check-in pipeline from a terminal.
//
// Usage:
//
//	stallctl <command> [flags]
//
// Commands: migrate, token, create, list, rename, delete, open, close,
// current, history, products, product-set.
//
// Every command except migrate and token acts as a caller identified by
// --token (a bearer JWT) or --caller (a raw caller id). Results are printed
// as JSON on stdout; failures print {"error":{"code","message"}} and exit 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/encuentrame-backend/internal/app"
	"github.com/heartmarshall/encuentrame-backend/internal/config"
)

var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	cli := &cli{cfg: cfg, log: logger, out: os.Stdout}
	err = cli.run(ctx, os.Args[1], os.Args[2:])
	if errors.Is(err, errUsage) {
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		writeError(os.Stdout, err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: stallctl <command> [flags]

commands:
  migrate       apply database migrations
  token         issue a bearer token for --caller
  create        register a stall (--name)
  list          list the caller's stalls
  rename        rename a stall (--stall --name)
  delete        delete a closed stall (--stall)
  open          check a stall in (--stall --lat --lng --stall-photo --products-photo --inventory)
  close         close the active opening (--stall)
  current       show the current opening (--stall, or the caller's first stall)
  history       list openings (--stall --limit)
  products      list the stall catalog (--stall --active-only)
  product-set   edit a product (--stall --product --display --price --active --tags)

identity flags (all commands but migrate):
  --token       bearer JWT
  --caller      caller id, bypassing token verification`)
}
