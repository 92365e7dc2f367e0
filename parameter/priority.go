package parameter

import "github.com/lixenwraith/gameparam/chain"

// Pre-processor priority bands (higher runs first)
const (
	PriorityFirst      = chain.PriorityMax // Runs ahead of every band
	PriorityBase       = 400               // Flat adjustments to the base value
	PriorityEquipment  = 300
	PriorityMultiplier = 200
	PriorityStatus     = 100 // Buffs, debuffs, conditions
	PriorityDefault    = 0
	PriorityOverride   = -1000             // Replaces the accumulated value, before caps
	PriorityCap        = chain.PriorityMin // Clamps and limits, always last
)
