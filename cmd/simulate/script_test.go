package main

import (
	"reflect"
	"testing"

	"github.com/automoto/slopedash/shared/controller"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []step
	}{
		{
			name:   "moves",
			script: "right:60, left:2,idle",
			want: []step{
				{frames: 60, setAxis: true, horizontal: 1},
				{frames: 2, setAxis: true, horizontal: -1},
				{frames: 1, setAxis: true},
			},
		},
		{
			name:   "buttons",
			script: "jump,jump:8,release,DASH,wait:5",
			want: []step{
				{frames: 1, jumpDown: true},
				{frames: 8, jumpDown: true, jumpUp: true},
				{frames: 1, jumpUp: true},
				{frames: 1, dashDown: true},
				{frames: 5},
			},
		},
		{name: "empty", script: " , ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScript(tt.script)
			if err != nil {
				t.Fatalf("parseScript: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseScript(%q) = %+v, want %+v", tt.script, got, tt.want)
			}
		})
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"fly", "right:0", "left:x", "dash:-1"} {
		t.Run(script, func(t *testing.T) {
			if _, err := parseScript(script); err == nil {
				t.Errorf("expected error for %q", script)
			}
		})
	}
}

func TestScriptCursorEdges(t *testing.T) {
	steps, err := parseScript("right:2,jump:3,dash")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if frameCount(steps) != 6 {
		t.Fatalf("frameCount = %d, want 6", frameCount(steps))
	}

	input := &controller.ScriptedInput{}
	cursor := scriptCursor{steps: steps}

	var got []controller.InputState
	for i := 0; i < 7; i++ {
		cursor.next(input)
		got = append(got, input.State)
	}

	want := []controller.InputState{
		{Horizontal: 1},
		{Horizontal: 1},
		{Horizontal: 1, JumpButtonDown: true},
		{Horizontal: 1},
		{Horizontal: 1, JumpButtonUp: true},
		{Horizontal: 1, DashButtonDown: true},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("states = %+v\nwant %+v", got, want)
	}
}
