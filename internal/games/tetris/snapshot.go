package tetris

// Snapshot contains the complete game state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Frame uint64
	Phase string

	// Board cells as kind values, row-major from the floor up
	Width, Height int
	Board         []int

	PieceKind    int
	Rotation     int
	PieceX       int
	PieceY       int
	GhostX       int
	GhostY       int
	Locking      bool
	SonicLock    bool
	Held         bool
	LockCounter  int
	EntryCounter int

	Hold []int // zero or one kind
	Next []int

	Score int
	Lines int
	Level int
	Stats []int // placements per kind, indexed by kind

	LineClearRows    []int
	LineClearCounter int
	PopupPoints      int
	ToppedOut        bool
	Debug            bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, Phase: g.phase.String()}
	}
	e := g.engine
	p := e.Piece()
	ghost := e.Ghost()

	s := Snapshot{
		Tick:         g.tick,
		Frame:        e.Frame(),
		Phase:        g.phase.String(),
		Width:        e.Board().Width(),
		Height:       e.Board().Height(),
		Board:        e.Board().Kinds(),
		PieceKind:    int(p.Kind),
		Rotation:     int(p.Rotation),
		PieceX:       p.Pos.X,
		PieceY:       p.Pos.Y,
		GhostX:       ghost.X,
		GhostY:       ghost.Y,
		Locking:      p.Locking,
		SonicLock:    p.SonicLock,
		Held:         p.Held,
		LockCounter:  p.LockCounter,
		EntryCounter: p.EntryCounter,
		Score:        e.Score(),
		Lines:        e.Lines(),
		Level:        e.Level(),
		ToppedOut:    e.ToppedOut(),
		Debug:        e.Debug(),
	}

	if h := e.HoldKind(); h != KindNone {
		s.Hold = []int{int(h)}
	}
	for _, k := range e.NextKinds() {
		s.Next = append(s.Next, int(k))
	}
	s.Stats = make([]int, kindCount)
	for _, k := range AllKinds {
		s.Stats[k] = e.Stats(k)
	}
	if lc := e.LineClear(); lc != nil {
		s.LineClearRows = append([]int(nil), lc.Rows...)
		s.LineClearCounter = lc.Counter
	}
	if pp := e.Popup(); pp != nil {
		s.PopupPoints = pp.Points
	}
	return s
}
