package tui

import zone "github.com/lrstanley/bubblezone"

// Zones marks rendered regions and reports where they landed on screen.
// *zone.Manager implements it.
type Zones interface {
	Mark(id, v string) string
	Scan(v string) string
	Get(id string) *zone.ZoneInfo
}

// inZone reports whether the cell x, y lies in z. It works on zones whose
// position was never recorded by a scan, which InBounds rejects.
func inZone(z *zone.ZoneInfo, x, y int) bool {
	if z == nil || z.StartX > z.EndX || z.StartY > z.EndY {
		return false
	}
	return x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY
}
