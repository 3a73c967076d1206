package games

// Type identifies one of the supported wager games.
type Type string

const (
	Dice      Type = "dice"
	Coinflip  Type = "coinflip"
	Crash     Type = "crash"
	Blackjack Type = "blackjack"
	Roulette  Type = "roulette"
	Slots     Type = "slots"
	Mines     Type = "mines"
	Plinko    Type = "plinko"
)

// Config is the static per-game table every payout formula derives from.
// Loaded once, never mutated at runtime.
type Config struct {
	MinBet    float64
	MaxBet    float64
	HouseEdge float64
	MaxPayout float64
}

var configs = map[Type]Config{
	Dice:      {MinBet: 0.01, MaxBet: 1000, HouseEdge: 0.01, MaxPayout: 9900},
	Coinflip:  {MinBet: 0.01, MaxBet: 1000, HouseEdge: 0.02, MaxPayout: 1960},
	Crash:     {MinBet: 0.01, MaxBet: 1000, HouseEdge: 0.01, MaxPayout: 10000},
	Roulette:  {MinBet: 0.01, MaxBet: 500, HouseEdge: 0.027, MaxPayout: 18000},
	Blackjack: {MinBet: 0.01, MaxBet: 500, HouseEdge: 0.005, MaxPayout: 1250},
	Slots:     {MinBet: 0.01, MaxBet: 100, HouseEdge: 0.05, MaxPayout: 10000},
	Mines:     {MinBet: 0.01, MaxBet: 500, HouseEdge: 0.04, MaxPayout: 25000},
	Plinko:    {MinBet: 0.01, MaxBet: 100, HouseEdge: 0.03, MaxPayout: 100000},
}

// ConfigFor returns the configuration for a game type.
func ConfigFor(t Type) (Config, bool) {
	c, ok := configs[t]
	return c, ok
}

// Types lists all configured game types.
func Types() []Type {
	out := make([]Type, 0, len(configs))
	for t := range configs {
		out = append(out, t)
	}
	return out
}
