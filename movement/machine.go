package movement

// Machine owns the current movement state. Each frame the owner sets
// Context().Keys, calls Update to evaluate transitions, and forwards the
// animation controller's end notifications.
type Machine struct {
	ctx     *Context
	current *State
}

// NewMachine starts in Idle.
func NewMachine(ctx *Context) *Machine {
	m := &Machine{ctx: ctx}
	m.current = Enter(ctx, KindIdle)
	return m
}

func (m *Machine) Context() *Context { return m.ctx }

func (m *Machine) Current() *State { return m.current }

// Update evaluates the current state's transition rules. On a swap the
// animation side is asked to follow unless the successor came from an end
// notification.
func (m *Machine) Update() {
	next := Transition(m.ctx, m.current)
	if next == nil || next == m.current {
		return
	}
	m.current = next
	if next.requestAnim {
		m.ctx.Anim.RequestTransition(next.Kind.StateID())
	}
}

// UpdateRootMotion advances the current state's root-motion sampling.
func (m *Machine) UpdateRootMotion() {
	UpdateRootMotion(m.ctx, m.current)
}

// NotifyEndOfAnimationState implements anim.EndListener.
func (m *Machine) NotifyEndOfAnimationState(trigger bool) {
	NotifyEnd(m.ctx, m.current, trigger)
}

// Reset drops back to Idle without asking the animation side to follow.
func (m *Machine) Reset() {
	m.current = Enter(m.ctx, KindIdle)
}
