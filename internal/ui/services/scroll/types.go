package scroll

// WindowSize is the number of per-frame deltas averaged into the smoothed velocity
const WindowSize = 5

// Direction of the last scroll movement
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionNone Direction = 0
	DirectionDown Direction = 1
)

// Velocity is derived on every processed scroll frame
type Velocity struct {
	Instantaneous float64
	Smoothed      float64
	Direction     Direction
}

// Config holds the momentum thresholds
type Config struct {
	// MomentumThreshold is the smoothed velocity (lines per frame) above which a burst is momentum
	MomentumThreshold float64
	// CooldownMs keeps momentum held after velocity has settled to zero
	CooldownMs int64
	// IdleClearMs is the quiet period after which the window is cleared
	IdleClearMs int64
}

// DefaultConfig returns the processor defaults
func DefaultConfig() Config {
	return Config{
		MomentumThreshold: 8,
		CooldownMs:        150,
		IdleClearMs:       100,
	}
}

func (c Config) applyDefaults() Config {
	d := DefaultConfig()
	if c.MomentumThreshold <= 0 {
		c.MomentumThreshold = d.MomentumThreshold
	}
	if c.CooldownMs <= 0 {
		c.CooldownMs = d.CooldownMs
	}
	if c.IdleClearMs <= 0 {
		c.IdleClearMs = d.IdleClearMs
	}
	return c
}

// State holds the rolling window and momentum flag
type State struct {
	Deltas  [WindowSize]float64
	Count   int // filled slots, at most WindowSize
	Next    int // ring write position
	LastY   float64
	HasLast bool

	LastEventMs int64
	Velocity    Velocity

	Momentum bool
	// CooldownUntilMs is non-zero while momentum is being released
	CooldownUntilMs int64
}
