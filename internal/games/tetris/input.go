package tetris

// AutoShift turns held left/right keys into move intents: one move on the
// press, then, after Delay ticks, one move every Interval ticks.
type AutoShift struct {
	Delay    int
	Interval int

	dir     int // -1 left, 1 right, 0 idle
	counter int
}

// NewAutoShift creates a decoder with the given timings in ticks.
func NewAutoShift(delay, interval int) AutoShift {
	return AutoShift{Delay: delay, Interval: max(interval, 1)}
}

// Update consumes this tick's held state and returns the move to apply.
// When both keys are held the direction already in progress wins.
func (a *AutoShift) Update(left, right bool) Intent {
	dir := 0
	switch {
	case left && right:
		dir = a.dir
	case left:
		dir = -1
	case right:
		dir = 1
	}

	if dir == 0 {
		a.Reset()
		return 0
	}
	if dir != a.dir {
		a.dir = dir
		a.counter = 0
		return moveIntent(dir)
	}

	a.counter++
	if a.counter >= a.Delay && (a.counter-a.Delay)%max(a.Interval, 1) == 0 {
		return moveIntent(dir)
	}
	return 0
}

// Reset forgets any key in progress.
func (a *AutoShift) Reset() {
	a.dir = 0
	a.counter = 0
}

func moveIntent(dir int) Intent {
	if dir < 0 {
		return IntentMoveLeft
	}
	return IntentMoveRight
}
