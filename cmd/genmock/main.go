// Command genmock generates a synthetic TRV best-track fixture file for
// tests and demos. Output is deterministic for a given seed. With -malformed
// it injects the malformation kinds the scanner must survive: a wrong-arity
// header, a short block (declared count above the actual track lines), and
// track lines with bad arity or non-integer fields.
//
// Usage:
//
//	go run ./cmd/genmock -out data/trv_mock.csv -blocks 25 -malformed
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

var names = []string{
	"HAIKUI", "SAOLA", "DOKSURI", "KHANUN", "MAWAR", "TALIM",
	"MERANTI", "MANGKHUT", "LEKIMA", "IN-FA", "CHABA", "",
}

func run() error {
	out := flag.String("out", "", "output path for the fixture file")
	blocks := flag.Int("blocks", 20, "number of vortex blocks to generate")
	seed := flag.Int64("seed", 1980, "random seed")
	malformed := flag.Bool("malformed", false, "inject malformed lines")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))

	var sb strings.Builder
	for i := 0; i < *blocks; i++ {
		writeBlock(&sb, rng, i, *malformed)
	}

	if err := os.WriteFile(*out, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d blocks to %s", *blocks, *out)
	return nil
}

func writeBlock(sb *strings.Builder, rng *rand.Rand, i int, malformed bool) {
	year := 1980 + rng.Intn(45)
	month := 6 + rng.Intn(4)
	day := 1 + rng.Intn(28)
	length := 1 + rng.Intn(72)
	declared := length
	name := names[rng.Intn(len(names))]
	stop := rng.Intn(4)
	intl := fmt.Sprintf("%02d%02d", year%100, 1+rng.Intn(30))
	start := fmt.Sprintf("%04d%02d%02d", year, month, day)

	// Every 7th block declares more points than it gets, exercising the
	// count-mismatch path.
	if malformed && i%7 == 3 {
		declared += 5
	}

	// Every 11th block gets a dangling truncated header before it.
	if malformed && i%11 == 5 {
		fmt.Fprintf(sb, "66666,%s,%d,%s\n", intl, declared, start)
	}

	fmt.Fprintf(sb, "66666,%s,%d,%s,%s,%d,%s,%s\n",
		intl, declared, intl, intl, stop, name, start)

	lat := 150 + rng.Intn(250)
	lon := 980 + rng.Intn(400)
	for h := 0; h < length; h++ {
		if malformed && i%5 == 2 && h == length/2 {
			// Bad arity: dropped by the scanner without losing sync.
			fmt.Fprintf(sb, "%s%02d,%d,%d,%d,%d\n", start, h%24, lat, lon, rng.Intn(200)-100, rng.Intn(80))
			continue
		}
		lat += rng.Intn(7) - 3
		lon += rng.Intn(9) - 4
		fmt.Fprintf(sb, "%s%02d,%d,%d,%d,%d,%d\n",
			start, h%24, lat, lon, rng.Intn(200)-100, rng.Intn(80), rng.Intn(150))
	}
}
