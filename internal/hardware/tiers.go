package hardware

// GiB is one gibibyte in bytes.
const GiB = uint64(1) << 30

// Tier buckets machines by how much memory they can give a model.
type Tier int

const (
	TierMinimal Tier = iota
	TierTiny
	TierSmall
	TierMedium
	TierLarge
	TierWorkstation
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierMinimal:
		return "minimal"
	case TierTiny:
		return "tiny"
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	case TierWorkstation:
		return "workstation"
	default:
		return "unknown"
	}
}

// tierThresholds maps upper memory bounds to tiers, checked in order.
var tierThresholds = []struct {
	below uint64
	tier  Tier
}{
	{4 * GiB, TierMinimal},
	{8 * GiB, TierTiny},
	{16 * GiB, TierSmall},
	{32 * GiB, TierMedium},
	{64 * GiB, TierLarge},
}

// TierFor maps an effective memory budget to a tier.
func TierFor(effective uint64) Tier {
	for _, t := range tierThresholds {
		if effective < t.below {
			return t.tier
		}
	}
	return TierWorkstation
}

// EffectiveMemory is the budget used to size models: discrete GPU VRAM when
// present, otherwise system RAM. Unified-memory GPUs share system RAM, so
// they also fall back to the RAM figure.
func (i *Info) EffectiveMemory() uint64 {
	if i.GPU != nil && !i.GPU.Unified && i.GPU.VRAMTotal > 0 {
		return i.GPU.VRAMTotal
	}
	return i.TotalRAM
}

// Tier buckets this machine by its effective memory.
func (i *Info) Tier() Tier {
	return TierFor(i.EffectiveMemory())
}
