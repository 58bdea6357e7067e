package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/slopedash/shared/controller"
)

// step holds the input for a run of frames. Button edges fire on the first
// frame only, except jumpUp which fires on the last.
type step struct {
	frames     int
	setAxis    bool
	horizontal float64
	jumpDown   bool
	jumpUp     bool
	dashDown   bool
}

// parseScript reads a comma separated list of verb[:frames] tokens:
//
//	right, left, idle   hold the stick for frames (default 1)
//	jump                press jump; with frames, release it on the last one
//	release             release jump
//	dash                press dash
//	wait                keep the current stick for frames
func parseScript(script string) ([]step, error) {
	var steps []step
	for _, token := range strings.Split(script, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		verb, count, hasCount := strings.Cut(token, ":")
		frames := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad frame count in %q", token)
			}
			frames = n
		}

		s := step{frames: frames}
		switch strings.ToLower(verb) {
		case "right":
			s.setAxis, s.horizontal = true, 1
		case "left":
			s.setAxis, s.horizontal = true, -1
		case "idle":
			s.setAxis = true
		case "jump":
			s.jumpDown = true
			s.jumpUp = hasCount
		case "release":
			s.jumpUp = true
		case "dash":
			s.dashDown = true
		case "wait":
		default:
			return nil, fmt.Errorf("unknown action %q", verb)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// frameCount returns the number of frames the steps cover.
func frameCount(steps []step) int {
	n := 0
	for _, s := range steps {
		n += s.frames
	}
	return n
}

// apply sets input for frame i of s.
func (s step) apply(input *controller.ScriptedInput, i int) {
	if s.setAxis {
		input.State.Horizontal = s.horizontal
	}
	input.Press(
		s.jumpDown && i == 0,
		s.jumpUp && i == s.frames-1 && (s.frames > 1 || !s.jumpDown),
		s.dashDown && i == 0,
	)
}
