package systems

import (
	"github.com/automoto/slopedash/components"
	cfg "github.com/automoto/slopedash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateCharacters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.AxisX, input.AxisY = readAnalogStick(gamepadIDs)
	if input.AxisX != 0 || input.AxisY != 0 {
		gamepadUsed = true
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readAnalogStick returns the left stick of the first gamepad pushed past
// the deadzone. The vertical axis is flipped so up is positive.
func readAnalogStick(gamepads []ebiten.GamepadID) (x, y float64) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		x, y = applyDeadzone(horizontal), applyDeadzone(vertical)
		if x != 0 || y != 0 {
			return x, y
		}
	}
	return 0, 0
}

func applyDeadzone(v float64) float64 {
	if v > -cfg.Input.AnalogDeadzone && v < cfg.Input.AnalogDeadzone {
		return 0
	}
	return v
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// DeviceInput exposes the polled Input component as a controller.Input.
// It reads the singleton on every call so it always sees the latest poll.
type DeviceInput struct {
	ecs *ecs.ECS
}

func NewDeviceInput(ecs *ecs.ECS) *DeviceInput {
	return &DeviceInput{ecs: ecs}
}

func (d *DeviceInput) data() *components.InputData {
	return getOrCreateInput(d.ecs)
}

func (d *DeviceInput) Horizontal() float64 {
	return axis(d.data(), cfg.ActionMoveLeft, cfg.ActionMoveRight, d.data().AxisX)
}

func (d *DeviceInput) Vertical() float64 {
	return axis(d.data(), cfg.ActionMoveDown, cfg.ActionMoveUp, d.data().AxisY)
}

func (d *DeviceInput) JumpButtonDown() bool {
	return GetAction(d.data(), cfg.ActionJump).JustPressed
}

func (d *DeviceInput) JumpButtonUp() bool {
	return GetAction(d.data(), cfg.ActionJump).JustReleased
}

func (d *DeviceInput) DashButtonDown() bool {
	return GetAction(d.data(), cfg.ActionDash).JustPressed
}

// axis combines a pair of digital actions with an analog value. Digital
// input wins when held.
func axis(input *components.InputData, negative, positive cfg.ActionID, analog float64) float64 {
	var v float64
	if input.Current[negative] {
		v--
	}
	if input.Current[positive] {
		v++
	}
	if input.Current[negative] || input.Current[positive] {
		return v
	}
	return analog
}
