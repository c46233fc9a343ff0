package teamrank

import "upline-server/internal/store"

// Tier is one rung of a rank ladder: the team size that unlocks it and the
// one-time reward paid on reaching it.
type Tier struct {
	Name      string
	Threshold int
	Reward    float64
}

// FreeTiers is the ladder evaluated against total_team_size. Thresholds are
// inclusive and strictly ascending.
var FreeTiers = []Tier{
	{Name: "BRONZE", Threshold: 10, Reward: 1.0},
	{Name: "SILVER", Threshold: 50, Reward: 5.0},
	{Name: "GOLD", Threshold: 200, Reward: 20.0},
	{Name: "PLATINUM", Threshold: 1000, Reward: 100.0},
	{Name: "DIAMOND", Threshold: 5000, Reward: 500.0},
}

// PaidTiers is the ladder evaluated against paid_team_size.
var PaidTiers = []Tier{
	{Name: "BRONZE", Threshold: 5, Reward: 2.5},
	{Name: "SILVER", Threshold: 25, Reward: 12.5},
	{Name: "GOLD", Threshold: 100, Reward: 50.0},
	{Name: "PLATINUM", Threshold: 500, Reward: 250.0},
	{Name: "DIAMOND", Threshold: 2500, Reward: 1250.0},
}

// TiersForTrack returns the ladder for a track.
func TiersForTrack(track store.Track) []Tier {
	if track == store.TrackPaid {
		return PaidTiers
	}
	return FreeTiers
}

// tierIndex returns the position of a rank name within a ladder, or -1 for
// store.RankNone and unknown names.
func tierIndex(tiers []Tier, name string) int {
	for i, tier := range tiers {
		if tier.Name == name {
			return i
		}
	}
	return -1
}

// NextTier returns the tier immediately above currentRank, or false when the
// ladder is exhausted.
func NextTier(tiers []Tier, currentRank string) (Tier, bool) {
	next := tierIndex(tiers, currentRank) + 1
	if next >= len(tiers) {
		return Tier{}, false
	}
	return tiers[next], true
}

// EvaluateTier returns the highest tier above currentRank whose threshold the
// count satisfies. Intermediate tiers crossed in the same jump are skipped:
// only the highest reachable tier is awarded, with its reward alone. The
// second return is false when no higher tier is reached, including when the
// current rank is already the top of the ladder.
func EvaluateTier(tiers []Tier, currentRank string, count int) (Tier, bool) {
	currentIndex := tierIndex(tiers, currentRank)
	for i := len(tiers) - 1; i > currentIndex; i-- {
		if count >= tiers[i].Threshold {
			return tiers[i], true
		}
	}
	return Tier{}, false
}
