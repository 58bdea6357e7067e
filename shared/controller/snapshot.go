package controller

// Snapshot is the persistable part of a Character.
type Snapshot struct {
	FacingRight   bool    `json:"facingRight"`
	CanAirDash    bool    `json:"canAirDash"`
	Dashing       bool    `json:"dashing"`
	DashDirection float64 `json:"dashDirection"`
	DashReadyAt   float64 `json:"dashReadyAt"`
	DashRemaining float64 `json:"dashRemaining"`
	Clock         float64 `json:"clock"`
}

// Snapshot captures the character's timers and flags.
func (c *Character) Snapshot() Snapshot {
	return Snapshot{
		FacingRight:   c.facingRight,
		CanAirDash:    c.canAirDash,
		Dashing:       c.dashState == Dashing,
		DashDirection: c.dashDirection,
		DashReadyAt:   c.dashReadyAt,
		DashRemaining: c.dashRemaining,
		Clock:         c.clock,
	}
}

// Restore overwrites the character's timers and flags. The facing change
// is reported through OnFlip so cosmetics stay in sync.
func (c *Character) Restore(s Snapshot) {
	flipped := c.facingRight != s.FacingRight

	c.facingRight = s.FacingRight
	c.canAirDash = s.CanAirDash
	c.dashState = DashIdle
	if s.Dashing {
		c.dashState = Dashing
	}
	c.dashDirection = s.DashDirection
	c.dashReadyAt = s.DashReadyAt
	c.dashRemaining = s.DashRemaining
	c.clock = s.Clock

	if flipped && c.OnFlip != nil {
		c.OnFlip(c.facingRight)
	}
}
