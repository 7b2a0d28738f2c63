package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vanshika/bataanroute/backend/internal/config"
	"github.com/vanshika/bataanroute/backend/internal/dataset"
	"github.com/vanshika/bataanroute/backend/internal/generator"
	"github.com/vanshika/bataanroute/backend/internal/graph"
	"github.com/vanshika/bataanroute/backend/internal/logging"
	"github.com/vanshika/bataanroute/backend/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("routefinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		from      = fs.String("from", "", "start location; prompts on stdin when both -from and -to are empty")
		to        = fs.String("to", "", "end location")
		synthetic = fs.Int("synthetic", 0, "route over a generated network with this many locations instead of Bataan")
		seed      = fs.Int64("seed", generator.DefaultConfig().Seed, "random seed for -synthetic")
	)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger := logging.NewWithWriter(cfg.Logging, stderr).With("component", "routefinder")

	store, err := loadStore(ctx, *synthetic, *seed)
	if err != nil {
		logger.Error("failed to build route graph", "error", err)
		return 1
	}
	svc := service.NewRouteService(store)
	summary := svc.Summary(ctx)
	logger.Debug("route graph loaded", "locations", summary.Locations, "routes", summary.Routes)

	if *from != "" || *to != "" {
		if err := query(ctx, logger, svc, stdout, *from, *to); err != nil {
			return 1
		}
		return 0
	}

	prompt(ctx, logger, svc, stdin, stdout)
	return 0
}

func loadStore(ctx context.Context, synthetic int, seed int64) (*graph.Store, error) {
	if synthetic <= 0 {
		return dataset.LoadBataan()
	}

	genCfg := generator.DefaultConfig()
	genCfg.Nodes = synthetic
	genCfg.ExtraEdges = synthetic * 3 / 2
	genCfg.Seed = seed

	genCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ds, err := generator.New(genCfg).Generate(genCtx)
	if err != nil {
		return nil, fmt.Errorf("generate network: %w", err)
	}
	return dataset.Build(ds.Locations, ds.Routes)
}

// prompt collects start and end names until EOF or an empty start.
func prompt(ctx context.Context, logger *slog.Logger, svc *service.RouteService, stdin io.Reader, stdout io.Writer) {
	scanner := bufio.NewScanner(stdin)
	for ctx.Err() == nil {
		fmt.Fprint(stdout, "Start location: ")
		if !scanner.Scan() {
			break
		}
		start := strings.TrimSpace(scanner.Text())
		if start == "" {
			break
		}

		fmt.Fprint(stdout, "End location: ")
		if !scanner.Scan() {
			break
		}
		_ = query(ctx, logger, svc, stdout, start, scanner.Text())
	}
	fmt.Fprintln(stdout)
}

func query(ctx context.Context, logger *slog.Logger, svc *service.RouteService, stdout io.Writer, start, end string) error {
	result, err := svc.FindRoute(ctx, start, end)
	if err != nil {
		if !errors.Is(err, graph.ErrUnknownNode) && !errors.Is(err, service.ErrMissingLocation) {
			logger.Error("route query failed", "error", err)
		}
		fmt.Fprintf(stdout, "Error finding route: %v\n", err)
		return err
	}
	fmt.Fprintln(stdout, result.Message())
	return nil
}
