package montebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput reports which keys were pressed during the current tick.
type KeyInput interface {
	IsJustPressed(key ebiten.Key) bool
}

// Keys reads the keyboard state from ebiten.
type Keys struct{}

func (k Keys) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (k Keys) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// AnyJustPressed returns true if at least one of the given keys was just pressed.
func AnyJustPressed(input KeyInput, keys ...ebiten.Key) bool {
	for _, key := range keys {
		if input.IsJustPressed(key) {
			return true
		}
	}

	return false
}
