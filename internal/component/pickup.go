// internal/component/pickup.go
package component

import "go-arena-fps/internal/defs"

// Pickup — подбираемый предмет (патроны или аптечка).
type Pickup struct {
	Kind defs.PickupKind
}
