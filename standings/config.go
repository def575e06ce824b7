// Package standings turns a group's recorded games into ranked season
// standings. Everything in here is a pure computation over in-memory
// data: callers load the games and users, we fold them into per-player
// rows and order them for display.
package standings

// Config carries the scoring constants. It is passed in explicitly so
// tests can vary the stake and default buy-in.
type Config struct {
	// BestHandStake is the fixed amount each best-hand participant pays
	// into the side pot, per game.
	BestHandStake float64
	// DefaultBuyIn applies when a game doesn't set its own buy-in.
	DefaultBuyIn float64
}

func DefaultConfig() Config {
	return Config{
		BestHandStake: 5,
		DefaultBuyIn:  20,
	}
}

func (c Config) buyInFor(gameBuyIn float64) float64 {
	if gameBuyIn > 0 {
		return gameBuyIn
	}
	return c.DefaultBuyIn
}
