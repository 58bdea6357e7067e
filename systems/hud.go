package systems

import (
	"fmt"

	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/automoto/slopedash/fonts"
	"github.com/automoto/slopedash/shared/gamemath"
	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD shows the first player's movement state and the latest status
// message.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowHUD {
		return
	}
	entry, ok := components.Player.First(e.World)
	if !ok || !entry.HasComponent(netcomponents.NetBody) || !entry.HasComponent(netcomponents.NetCharacter) {
		return
	}

	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := cfg.UI.HUDMargin

	lines := hudLines(*netcomponents.NetBody.Get(entry), *netcomponents.NetCharacter.Get(entry))
	if settings.Status != "" {
		lines = append(lines, settings.Status)
	}

	vector.FillRect(screen, 0, 0, 230, float32(len(lines)*lineHeight+2*margin), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+(i+1)*lineHeight-2, cfg.White)
	}

	if settings.Debug {
		hint := fmt.Sprintf("max slope %.0f deg", gamemath.WalkableAngle(cfg.Physics.MinGroundNormalY))
		text.Draw(screen, hint, fonts.Debug.Get(), margin, screen.Bounds().Dy()-margin, cfg.LightGreen)
	}
}

// hudLines formats the synced view of a player, the same state a snapshot
// server publishes.
func hudLines(body netcomponents.NetBodyData, ch netcomponents.NetCharacterData) []string {
	ground := "air"
	if body.Grounded {
		ground = fmt.Sprintf("ground n=(%.2f, %.2f)", body.NormalX, body.NormalY)
	}

	dash := "dash ready"
	switch {
	case ch.Dashing:
		dash = fmt.Sprintf("dashing %.2fs", ch.DashRemaining)
	case ch.DashCooldown > 0:
		dash = fmt.Sprintf("dash in %.1fs", ch.DashCooldown)
	case !body.Grounded && !ch.CanAirDash:
		dash = "air dash used"
	}

	return []string{
		fmt.Sprintf("pos (%.2f, %.2f)", body.X, body.Y),
		fmt.Sprintf("vel (%.2f, %.2f)", body.SpeedX, body.SpeedY),
		ground,
		dash,
		fmt.Sprintf("tick %d", ch.Tick),
	}
}
