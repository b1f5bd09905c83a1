package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/coinbase/ecc-go/pkg/ecc"
	"github.com/coinbase/ecc-go/pkg/ecc/logging"
)

const defaultScalar = "c51e4753afdec1e6b6c6a5b992f43f8dd0c7a8933072708b6522468b2ffb06fd"

func main() {
	var (
		count   = flag.Int("count", 30, "number of scalar multiplications to time")
		scalar  = flag.String("scalar", defaultScalar, "hex scalar to multiply by")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := context.Background()

	logger.Info(ctx, "ecc-go", "version", ecc.LibraryVersion())

	if *count <= 0 {
		log.Fatalf("count must be positive, got %d", *count)
	}
	k, ok := new(big.Int).SetString(*scalar, 16)
	if !ok || k.Sign() < 0 {
		log.Fatalf("invalid scalar %q", *scalar)
	}

	cfg := ecc.Config{Logger: logger}
	key, err := cfg.Generate(ctx, ecc.CurveP256)
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}
	point := key.PointQ()

	start := time.Now()
	for i := 0; i < *count; i++ {
		if _, err := point.Multiply(k); err != nil {
			log.Fatalf("multiply: %v", err)
		}
	}
	elapsed := time.Since(start)

	logger.Info(ctx, "scalar multiplication",
		"count", *count,
		"total", elapsed,
		"per_op", elapsed/time.Duration(*count),
	)
}
