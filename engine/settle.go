package engine

import (
	"math"

	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

// Settlement computes the currency earned by a finished run
func Settlement(elapsed float64, kills, level int, rewardMult, currencyPct float64, loot int) int {
	base := elapsed*parameter.SettleTimeWeight +
		float64(kills*parameter.SettleKillWeight) +
		float64(level*parameter.SettleLevelWeight)
	return int(math.Floor(base*rewardMult*(1+currencyPct/100))) + loot
}

// Finish ends the run, settles its reward and opens the summary overlay
// Calling Finish on an ended run is a no-op
func (r *Run) Finish(died bool) {
	if !r.Active {
		return
	}
	r.Active = false
	r.Died = died

	mult := r.Zone.RewardMult
	if mult == 0 {
		mult = 1
	}
	r.CurrencyEarned = Settlement(r.Time, r.Kills, r.Level, mult, r.Totals.StarbitsPct, r.CurrencyEarned)

	r.Overlay = &Overlay{
		Kind:    OverlaySummary,
		Title:   "Run Complete",
		Choices: []Choice{{Label: "Return to Title", Action: ReturnToTitle{}}},
	}

	r.Emit(event.EventRunEnded, &event.RunEndedPayload{
		RunID:  r.ID,
		Zone:   r.Zone.ID,
		Time:   r.Time,
		Kills:  r.Kills,
		Level:  r.Level,
		Earned: r.CurrencyEarned,
		Died:   died,
	})
}
