package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	cli "github.com/urfave/cli/v2"

	"github.com/tamirms/binsort"
	"github.com/tamirms/binsort/keyhash"
)

// scenario describes one benchmark run. Scenarios come either from CLI flags
// or from a TOML config file with repeated [[scenario]] blocks.
type scenario struct {
	Name     string `toml:"name"`
	Keys     int    `toml:"keys"`
	KeyRange uint64 `toml:"keyrange"`
	Seed     uint64 `toml:"seed"`
	InPlace  bool   `toml:"inplace"`

	// Records switches to string-payload records whose sort keys are hash
	// digests of the payload, exercising hash-grouped sorting.
	Records bool   `toml:"records"`
	Hash    string `toml:"hash"`
}

type scenarioFile struct {
	Scenarios []scenario `toml:"scenario"`
}

// entries materializes the scenario's input batch.
func (s scenario) entries() ([]entry, error) {
	if s.Keys <= 0 {
		return nil, fmt.Errorf("scenario %q: keys must be positive", s.Name)
	}
	keyRange := s.KeyRange
	if keyRange == 0 {
		keyRange = 1 << 24
	}

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	entries := make([]entry, s.Keys)

	if s.Records {
		name := s.Hash
		if name == "" {
			name = keyhash.XXH3.String()
		}
		algo, err := keyhash.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			payload := fmt.Sprintf("record-%016x", rng.Uint64())
			entries[i] = entry{key: keyhash.SumString(algo, payload), payload: uint64(i)}
		}
		return entries, nil
	}

	for i := range entries {
		entries[i] = entry{key: rng.Uint64N(keyRange), payload: uint64(i)}
	}
	return entries, nil
}

func (s scenario) options() []binsort.Option {
	var opts []binsort.Option
	if s.InPlace {
		opts = append(opts, binsort.WithInPlaceDistribution())
	}
	return opts
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "compare binned sorting against a direct comparison sort",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a TOML file of [[scenario]] blocks (overrides other flags)",
			},
			inFlag,
			keysFlag,
			keyrangeFlag,
			seedFlag,
			inplaceFlag,
		},
		Action: runBench,
	}
}

func runBench(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		var file scenarioFile
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return fmt.Errorf("load scenario config: %w", err)
		}
		if len(file.Scenarios) == 0 {
			return fmt.Errorf("scenario config %q defines no scenarios", path)
		}
		for _, sc := range file.Scenarios {
			entries, err := sc.entries()
			if err != nil {
				return err
			}
			benchScenario(sc, entries)
		}
	} else {
		entries, err := loadEntries(c)
		if err != nil {
			return err
		}
		name := c.String("in")
		if name == "" {
			name = "adhoc"
		}
		benchScenario(scenario{Name: name, Keys: len(entries), InPlace: c.Bool("inplace")}, entries)
	}

	log.Info().Uint64("maxRSSBytes", getMaxRSS()).Msg("bench complete")
	return nil
}

func benchScenario(sc scenario, entries []entry) {
	baseline := slices.Clone(entries)

	start := time.Now()
	binsort.SortWithBins[uint64](entries, compareEntries, sc.options()...)
	binned := time.Since(start)

	start = time.Now()
	slices.SortFunc(baseline, compareEntries)
	direct := time.Since(start)

	match := slices.Equal(entries, baseline)

	ev := log.Info().
		Str("scenario", sc.Name).
		Int("keys", len(entries)).
		Bool("inplace", sc.InPlace).
		Dur("binned", binned).
		Dur("direct", direct).
		Bool("outputsMatch", match)
	if direct > 0 && binned > 0 {
		ev = ev.Float64("speedup", float64(direct)/float64(binned))
	}
	ev.Msg("scenario complete")
}
