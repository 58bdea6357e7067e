package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug       bool // Draw collider outlines and ground normals
	ShowHUD     bool
	Status      string // Last persistence or trigger message shown on the HUD
	StatusTimer int    // Frames left to show Status
}

var Settings = donburi.NewComponentType[SettingsData]()
