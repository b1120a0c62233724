// Command slope runs the built-in autodiff walkthroughs and optionally
// writes their computation graphs as Graphviz DOT files.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/slope-ml/slope/grad"
	"github.com/slope-ml/slope/render"
)

const version = "v0.1.0-dev"

var (
	demo   = flag.String("demo", "all", "Demo to run (basic, trig, chain, all)")
	dotDir = flag.String("dot", "", "Directory to write .dot graph files to (empty disables)")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("slope %s\n", version)
		return
	}

	flag.Parse()

	run := func(name string, fn func() *grad.Value) {
		if *demo != "all" && *demo != name {
			return
		}
		root := fn()
		if *dotDir == "" {
			return
		}
		path := filepath.Join(*dotDir, name)
		if err := render.Save(root, path); err != nil {
			log.Error().Err(err).Str("demo", name).Msg("failed to write graph")
			return
		}
		log.Info().Str("path", path+".dot").Msg("graph written")
	}

	run("basic", runBasic)
	run("trig", runTrig)
	run("chain", runChain)
}

// runBasic differentiates z = x*y + x at x=2, y=3.
func runBasic() *grad.Value {
	x := grad.NewLabeled(2.0, "x")
	y := grad.NewLabeled(3.0, "y")
	z := x.Mul(y).Add(x)
	z.SetLabel("z = x*y + x")

	z.Backward()

	log.Info().
		Float64("z", z.Float()).
		Float64("dz/dx", x.Grad()).
		Float64("dz/dy", y.Grad()).
		Msg("basic: z = x*y + x")
	return z
}

// runTrig differentiates y = sin(θ) + cos(θ) at θ = π/4, where the
// derivative vanishes.
func runTrig() *grad.Value {
	theta := grad.NewLabeled(math.Pi/4, "θ")
	y := theta.Sin().Add(theta.Cos())
	y.SetLabel("sin(θ) + cos(θ)")

	y.Backward()

	log.Info().
		Float64("y", y.Float()).
		Float64("dy/dθ", theta.Grad()).
		Msg("trig: y = sin(θ) + cos(θ)")
	return y
}

// runChain differentiates y = (3x + 1)³ at x=2.
func runChain() *grad.Value {
	x := grad.NewLabeled(2.0, "x")
	y := x.MulFloat(3).AddFloat(1).PowFloat(3)
	y.SetLabel("(3x + 1)³")

	y.Backward()

	log.Info().
		Float64("y", y.Float()).
		Float64("dy/dx", x.Grad()).
		Msg("chain: y = (3x + 1)³")
	return y
}
