package teamrank

import (
	"testing"

	"upline-server/internal/store"
)

func TestTiersAscending(t *testing.T) {
	for _, tiers := range [][]Tier{FreeTiers, PaidTiers} {
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Threshold <= tiers[i-1].Threshold {
				t.Errorf("tier %s threshold %d not above %s threshold %d",
					tiers[i].Name, tiers[i].Threshold, tiers[i-1].Name, tiers[i-1].Threshold)
			}
		}
	}
}

func TestEvaluateTier(t *testing.T) {
	tests := []struct {
		name        string
		currentRank string
		count       int
		wantTier    string
		wantOK      bool
	}{
		{name: "below first threshold", currentRank: store.RankNone, count: 9, wantOK: false},
		{name: "exactly at threshold", currentRank: store.RankNone, count: 10, wantTier: "BRONZE", wantOK: true},
		{name: "between thresholds", currentRank: "BRONZE", count: 49, wantOK: false},
		{name: "next tier reached", currentRank: "BRONZE", count: 50, wantTier: "SILVER", wantOK: true},
		{name: "skips intermediate tiers", currentRank: store.RankNone, count: 200, wantTier: "GOLD", wantOK: true},
		{name: "count above lower tier only", currentRank: "GOLD", count: 500, wantOK: false},
		{name: "already at top", currentRank: "DIAMOND", count: 1000000, wantOK: false},
		{name: "unknown rank treated as none", currentRank: "bogus", count: 10, wantTier: "BRONZE", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := EvaluateTier(FreeTiers, tt.currentRank, tt.count)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && tier.Name != tt.wantTier {
				t.Errorf("expected tier %s, got %s", tt.wantTier, tier.Name)
			}
		})
	}
}

func TestEvaluateTierPaidLadder(t *testing.T) {
	tier, ok := EvaluateTier(PaidTiers, store.RankNone, 5)
	if !ok || tier.Name != "BRONZE" {
		t.Fatalf("expected BRONZE, got %v ok=%v", tier.Name, ok)
	}
	if tier.Reward != 2.5 {
		t.Errorf("expected reward 2.5, got %v", tier.Reward)
	}
}

func TestNextTier(t *testing.T) {
	next, ok := NextTier(FreeTiers, store.RankNone)
	if !ok || next.Name != "BRONZE" {
		t.Fatalf("expected BRONZE next from none, got %v ok=%v", next.Name, ok)
	}

	next, ok = NextTier(FreeTiers, "PLATINUM")
	if !ok || next.Name != "DIAMOND" {
		t.Fatalf("expected DIAMOND next from PLATINUM, got %v ok=%v", next.Name, ok)
	}

	if _, ok := NextTier(FreeTiers, "DIAMOND"); ok {
		t.Errorf("expected no tier above DIAMOND")
	}
}

func TestTiersForTrack(t *testing.T) {
	if got := TiersForTrack(store.TrackPaid); got[0].Threshold != PaidTiers[0].Threshold {
		t.Errorf("expected paid ladder for paid track")
	}
	if got := TiersForTrack(store.TrackFree); got[0].Threshold != FreeTiers[0].Threshold {
		t.Errorf("expected free ladder for free track")
	}
}
