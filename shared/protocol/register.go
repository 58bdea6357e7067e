package protocol

import (
	"sync"

	"github.com/automoto/slopedash/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBody      uint = 10
	SyncIDNetCharacter uint = 11
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBody uint8 = 10
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterComponents registers the actor snapshot components with necs for
// serialization. It is safe to call more than once; only the first call
// registers.
func RegisterComponents() error {
	registerOnce.Do(func() {
		registerErr = registerComponents()
	})
	return registerErr
}

func registerComponents() error {
	// Body state is interpolated for smooth rendering between snapshots
	if err := esync.RegisterComponent(
		SyncIDNetBody,
		netcomponents.NetBodyData{},
		netcomponents.NetBody,
		esync.WithInterpFn(InterpIDNetBody, netcomponents.LerpNetBody),
	); err != nil {
		return err
	}

	// Character: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetCharacter,
		netcomponents.NetCharacterData{},
		netcomponents.NetCharacter,
	); err != nil {
		return err
	}

	return nil
}
