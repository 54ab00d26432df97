// Binsort-bench is a benchmarking and verification tool for the binsort
// distribution pre-sort.
//
// Usage:
//
//	binsort-bench generate -out keys.bin -keys 10000000 -dist uniform
//	binsort-bench bench -in keys.bin
//	binsort-bench bench -config scenarios.toml
//	binsort-bench verify -trials 1000 -workers 8
//	binsort-bench distribute -in keys.bin -inplace
package main

import (
	"cmp"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	cli "github.com/urfave/cli/v2"

	"github.com/tamirms/binsort"
	"github.com/tamirms/binsort/internal/dataset"
)

// entry is the benchmarked element: a key with payload carried alongside.
type entry struct {
	key     uint64
	payload uint64
}

func (e entry) Key() uint64                         { return e.key }
func (e entry) Bin(l binsort.BinLayout[uint64]) int { return l.Index(e.key) }

func compareEntries(a, b entry) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.payload, b.payload)
}

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

var (
	inFlag = &cli.StringFlag{
		Name:  "in",
		Usage: "Path to a dataset file of little-endian uint64 keys",
	}
	keysFlag = &cli.IntFlag{
		Name:  "keys",
		Usage: "Number of keys to generate when no dataset file is given",
		Value: 1_000_000,
	}
	keyrangeFlag = &cli.Uint64Flag{
		Name:  "keyrange",
		Usage: "Exclusive upper bound on generated keys",
		Value: 1 << 24,
	}
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "PRNG seed for key and payload generation",
		Value: 1,
	}
	inplaceFlag = &cli.BoolFlag{
		Name:  "inplace",
		Usage: "Use the cycle-following in-place distribution variant",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}
)

func main() {
	app := &cli.App{
		Name:  "binsort-bench",
		Usage: "benchmark and verify the binsort distribution pre-sort",
		Before: func(c *cli.Context) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
		Flags: []cli.Flag{verboseFlag},
		Commands: []*cli.Command{
			generateCommand(),
			benchCommand(),
			verifyCommand(),
			distributeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write a dataset file of pseudo-random keys",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "Output path", Required: true},
			keysFlag,
			keyrangeFlag,
			seedFlag,
			&cli.StringFlag{
				Name:  "dist",
				Usage: "Key distribution: uniform, clusters, or constant",
				Value: dataset.DistUniform,
			},
		},
		Action: func(c *cli.Context) error {
			out := c.String("out")
			n := c.Int("keys")
			start := time.Now()
			if err := dataset.Generate(out, n, c.Uint64("seed"), c.String("dist"), c.Uint64("keyrange")); err != nil {
				return err
			}
			log.Info().
				Str("path", out).
				Int("keys", n).
				Str("dist", c.String("dist")).
				Dur("elapsed", time.Since(start)).
				Msg("dataset written")
			return nil
		},
	}
}

func distributeCommand() *cli.Command {
	return &cli.Command{
		Name:  "distribute",
		Usage: "run distribution only on a dataset and report bin statistics",
		Flags: []cli.Flag{inFlag, keysFlag, keyrangeFlag, seedFlag, inplaceFlag},
		Action: func(c *cli.Context) error {
			entries, err := loadEntries(c)
			if err != nil {
				return err
			}

			var opts []binsort.Option
			if c.Bool("inplace") {
				opts = append(opts, binsort.WithInPlaceDistribution())
			}

			start := time.Now()
			bins := binsort.SortByBins[uint64](entries, opts...)
			elapsed := time.Since(start)

			stats := binsort.BinStats(bins)
			log.Info().
				Int("keys", len(entries)).
				Int("bins", stats.Bins).
				Int("nonEmpty", stats.NonEmpty).
				Int("minCount", stats.MinCount).
				Int("maxCount", stats.MaxCount).
				Float64("meanCount", stats.Mean).
				Dur("elapsed", elapsed).
				Msg("distribution complete")
			return nil
		},
	}
}

func loadEntries(c *cli.Context) ([]entry, error) {
	if path := c.String("in"); path != "" {
		ds, err := dataset.Open(path)
		if err != nil {
			return nil, err
		}
		defer ds.Close()

		entries := make([]entry, ds.Len())
		for i := range entries {
			entries[i] = entry{key: ds.At(i), payload: uint64(i)}
		}
		log.Debug().Str("path", path).Int("keys", len(entries)).Msg("dataset loaded")
		return entries, nil
	}

	sc := scenario{
		Name:     "adhoc",
		Keys:     c.Int("keys"),
		KeyRange: c.Uint64("keyrange"),
		Seed:     c.Uint64("seed"),
	}
	return sc.entries()
}
