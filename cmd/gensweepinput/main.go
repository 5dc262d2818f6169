// Command gensweepinput generates random straight-line input for the
// sweep, printed to stdout as JSON. Useful for stress runs larger
// than the unit tests cover; --seed reproduces a reported input
// exactly.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arrangements/planesweep/traits"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensweepinput",
		Usage:     "Generates random straight-line segments and prints them to stdout as JSON",
		UsageText: "gensweepinput --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    8,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", Value: 100, OnlyOnce: true},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", Value: 0, OnlyOnce: true},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", Value: 100, OnlyOnce: true},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", Value: 0, OnlyOnce: true},
			&cli.IntFlag{Name: "seed", Usage: "Random seed; 0 derives a seed from the process ID", Value: 0, OnlyOnce: true},
			&cli.BoolFlag{Name: "vertical", Usage: "Allow generated segments to be vertical", Value: true, OnlyOnce: true},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"arrangements/planesweep"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	minX, maxX := cmd.Int("minx"), cmd.Int("maxx")
	minY, maxY := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("number")
	allowVertical := cmd.Bool("vertical")

	if minX >= maxX {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if minY >= maxY {
		return fmt.Errorf("maxy must be greater than miny")
	}

	seed := cmd.Int("seed")
	if seed == 0 {
		seed = int64(os.Getpid())
	}
	rng := rand.New(rand.NewSource(seed))

	segments := make([]traits.Segment, n)
	for i := int64(0); i < n; i++ {
		for {
			segments[i] = traits.Segment{
				P1: traits.Point{X: float64(randomInRange(rng, minX, maxX)), Y: float64(randomInRange(rng, minY, maxY))},
				P2: traits.Point{X: float64(randomInRange(rng, minX, maxX)), Y: float64(randomInRange(rng, minY, maxY))},
			}
			if segments[i].P1 == segments[i].P2 {
				continue // skip degenerate (zero-length) segments
			}
			if !allowVertical && segments[i].P1.X == segments[i].P2.X {
				continue
			}
			break
		}
	}

	b, err := json.Marshal(segments)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

func randomInRange(rng *rand.Rand, min, max int64) int64 {
	return min + rng.Int63n(max-min+1)
}
