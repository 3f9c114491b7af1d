package session

// System is one step of a session frame.
type System interface {
	Update(s *Session)
}

// SystemFunc adapts a function to System.
type SystemFunc func(s *Session)

func (f SystemFunc) Update(s *Session) { f(s) }

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (sc *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	sc.systems = append(sc.systems, system)
}

func (sc *Scheduler) Update(s *Session) {
	for _, system := range sc.systems {
		system.Update(s)
	}
}

func (sc *Scheduler) Systems() []System {
	systems := make([]System, 0, len(sc.systems))
	return append(systems, sc.systems...)
}
