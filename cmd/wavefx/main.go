// Command wavefx applies effects to a stereo 16-bit 44.1kHz WAV file read from
// standard input and writes the result to standard output.
//
// Usage:
//
//	wavefx -r < in.wav > reversed.wav
//	wavefx -i 0.5 -e 0.25 0.4 -o 1 < in.wav > out.wav
//	wavefx -p preset.yaml -v 0.8 < in.wav > out.wav
//	wavefx -x -l info -s 1.5 < in.wav > fast.wav   # log levels and verify output
//
// Effects are applied in command-line order and may be repeated. Steps from a
// preset run before the command-line effects. The exit status is 0 on success
// and the numeric error kind otherwise.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	wavefx "github.com/tphakala/go-wave-fx"
	"github.com/tphakala/go-wave-fx/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	if err := process(args, stdin, stdout, log); err != nil {
		msg, code := describe(err)
		log.WithError(err).Debug("processing failed")
		fmt.Fprintln(stderr, msg)
		return code
	}
	return exitOK
}

func process(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	inv, err := parseArgs(args)
	if err != nil {
		return err
	}

	steps, err := resolveSteps(inv, log)
	if err != nil {
		return err
	}

	clip, err := wavefx.Decode(bufio.NewReaderSize(stdin, stdinBufferSize))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"frames":   clip.Frames(),
		"duration": clip.Duration().String(),
		"steps":    len(steps),
	}).Info("input decoded")

	if inv.verbose {
		logReport(log, clip, "input")
	}

	if err := clip.Apply(steps, wavefx.WithLogger(log)); err != nil {
		return err
	}

	// The whole file is built before anything reaches stdout.
	out, err := clip.Bytes()
	if err != nil {
		return err
	}

	if inv.verbose {
		logReport(log, clip, "output")
		if err := verifyOutput(out, clip); err != nil {
			return err
		}
		log.Info("output verified")
	}

	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveSteps merges preset steps ahead of command-line steps and applies the
// log level. Precedence for the level is -l, then the environment, then the preset.
func resolveSteps(inv *invocation, log *logrus.Logger) ([]wavefx.Step, error) {
	preset := &config.Preset{}
	if inv.preset != "" {
		p, err := config.Load(inv.preset)
		if err != nil {
			return nil, err
		}
		preset = p
	}

	if env := os.Getenv(envLogLevel); env != "" {
		preset.LogLevel = env
	}
	if inv.logLevel != "" {
		preset.LogLevel = inv.logLevel
	}
	level, err := preset.Level()
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	steps, err := preset.PipelineSteps()
	if err != nil {
		return nil, err
	}
	return append(steps, inv.steps...), nil
}
