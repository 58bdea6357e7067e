package systems

import (
	"testing"

	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/kinematics"
	"github.com/automoto/slopedash/tags"
)

func TestRampOutline(t *testing.T) {
	box := kinematics.AABB{X: 2, Y: 1, W: 1, H: 1}

	tests := []struct {
		name      string
		slopeType string
		peak      gamemath.Vec2
	}{
		{name: "up right", slopeType: tags.Slope45UpRight, peak: gamemath.V(3, 2)},
		{name: "up left", slopeType: tags.Slope45UpLeft, peak: gamemath.V(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rampOutline(box, tt.slopeType)
			if got[0] != gamemath.V(2, 1) || got[1] != gamemath.V(3, 1) {
				t.Errorf("base = %+v, %+v, want (2, 1), (3, 1)", got[0], got[1])
			}
			if got[2] != tt.peak {
				t.Errorf("peak = %+v, want %+v", got[2], tt.peak)
			}
		})
	}
}
