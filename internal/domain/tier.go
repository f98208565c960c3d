package domain

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

const (
	SilverThreshold   = 1000
	GoldThreshold     = 5000
	PlatinumThreshold = 10000
)

// TierForPoints derives the loyalty tier from lifetime accumulated points.
func TierForPoints(lifetimePoints int) Tier {
	switch {
	case lifetimePoints >= PlatinumThreshold:
		return TierPlatinum
	case lifetimePoints >= GoldThreshold:
		return TierGold
	case lifetimePoints >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
