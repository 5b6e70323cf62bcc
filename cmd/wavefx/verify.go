package main

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	wavefx "github.com/tphakala/go-wave-fx"
)

// verifyOutput decodes the encoded output with an independent WAV reader and
// checks it describes the clip.
func verifyOutput(encoded []byte, clip *wavefx.Clip) error {
	dec := wav.NewDecoder(bytes.NewReader(encoded))
	if !dec.IsValidFile() {
		return &wavefx.Error{Kind: wavefx.ErrInternal, Field: "output", Err: fmt.Errorf("output is not a valid WAV file")}
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return &wavefx.Error{Kind: wavefx.ErrInternal, Field: "output", Err: fmt.Errorf("failed to decode output: %w", err)}
	}

	if buf.Format.NumChannels != wavefx.Channels || buf.Format.SampleRate != wavefx.SampleRate {
		return &wavefx.Error{Kind: wavefx.ErrInternal, Field: "output_format"}
	}
	if frames := len(buf.Data) / wavefx.Channels; frames != clip.Frames() {
		return &wavefx.Error{Kind: wavefx.ErrInternal, Field: "output_frames", Value: float64(frames)}
	}
	return nil
}

// logReport logs level statistics for clip at info level.
func logReport(log logrus.FieldLogger, clip *wavefx.Clip, stage string) {
	report, err := clip.Analyze()
	if err != nil {
		log.WithError(err).Warn("analysis failed")
		return
	}
	log.WithFields(report.Fields()).WithField("stage", stage).Info("clip levels")
}
