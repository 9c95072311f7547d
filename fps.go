package nodeboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsSuffix formats the measured frame and tick rates for the HUD.
func fpsSuffix() string {
	return fmt.Sprintf(" | fps: %.0f | tps: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
