package casino

import "sync"

// Tracker accumulates platform-wide wager and payout totals. Read-only with
// respect to game math: the house edge is fixed per game, the tracker only
// reports the realized return-to-player.
type Tracker struct {
	mu          sync.Mutex
	totalBet    float64
	totalPayout float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Record(bet, payout float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalBet += bet
	t.totalPayout += payout
}

func (t *Tracker) Totals() (bet, payout float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.totalBet, t.totalPayout
}

// RTP is the realized return-to-player fraction since process start.
func (t *Tracker) RTP() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.totalBet == 0 {
		return 0
	}
	return t.totalPayout / t.totalBet
}
