package main

import (
	"errors"
	"strconv"

	wavefx "github.com/tphakala/go-wave-fx"
)

// effectFlag describes one effect switch: how many numeric arguments it takes
// and how to turn them into a step.
type effectFlag struct {
	arity int
	build func(args []float64) wavefx.Step
}

var effectFlags = map[string]effectFlag{
	"-r": {0, func([]float64) wavefx.Step { return wavefx.Reverse() }},
	"-s": {1, func(a []float64) wavefx.Step { return wavefx.Speed(a[0]) }},
	"-S": {1, func(a []float64) wavefx.Step { return wavefx.SpeedCubic(a[0]) }},
	"-f": {0, func([]float64) wavefx.Step { return wavefx.Flip() }},
	"-o": {1, func(a []float64) wavefx.Step { return wavefx.FadeOut(a[0]) }},
	"-i": {1, func(a []float64) wavefx.Step { return wavefx.FadeIn(a[0]) }},
	"-v": {1, func(a []float64) wavefx.Step { return wavefx.Volume(a[0]) }},
	"-e": {2, func(a []float64) wavefx.Step { return wavefx.Echo(a[0], a[1]) }},
}

// invocation is a parsed command line.
type invocation struct {
	steps    []wavefx.Step
	preset   string // -p
	logLevel string // -l
	verbose  bool   // -x
}

// parseArgs walks the arguments left to right. Effects keep their order and may
// repeat; global options may appear anywhere. Parameter ranges are not checked
// here.
func parseArgs(args []string) (*invocation, error) {
	inv := &invocation{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-x":
			inv.verbose = true
			continue
		case "-p", "-l":
			if i+1 >= len(args) {
				return nil, usageError(arg)
			}
			i++
			if arg == "-p" {
				inv.preset = args[i]
			} else {
				inv.logLevel = args[i]
			}
			continue
		}

		fx, ok := effectFlags[arg]
		if !ok {
			return nil, usageError(arg)
		}
		if i+fx.arity >= len(args) {
			return nil, usageError(arg)
		}

		params := make([]float64, fx.arity)
		for k := range params {
			v, err := parseNumber(args[i+1+k])
			if err != nil {
				return nil, usageError(arg)
			}
			params[k] = v
		}
		i += fx.arity
		inv.steps = append(inv.steps, fx.build(params))
	}

	return inv, nil
}

// parseNumber accepts any float syntax. Out-of-range values saturate to
// infinity so that the effect reports its own parameter error.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

func usageError(flag string) error {
	return &wavefx.Error{Kind: wavefx.ErrUsage, Field: flag}
}
