package tags

import "github.com/yohamta/donburi"

var (
	Planet = donburi.NewTag().SetName("Planet")
)

// Resolv tags for grab hit-testing
const (
	ResolvGrab    = "grab"
	ResolvPointer = "pointer"
)
