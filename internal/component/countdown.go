package component

// Countdown простой убывающий счётчик. Новый счётчик уже завершён.
type Countdown struct {
	Initial int
	Current int
}

func NewCountdown(initial int) *Countdown {
	return &Countdown{Initial: initial}
}

// Start перезапускает счётчик с начального значения.
func (c *Countdown) Start() {
	c.Current = c.Initial
}

// Step уменьшает счётчик, если он ещё не дошёл до нуля.
func (c *Countdown) Step() {
	if c.Current > 0 {
		c.Current--
	}
}

func (c *Countdown) IsDone() bool {
	return c.Current == 0
}
