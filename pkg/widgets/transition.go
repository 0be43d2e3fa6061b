package widgets

import "github.com/go-drift/dotindicator/pkg/animation"

// TransitionSlot names one of the two animator handles an indicator reuses.
type TransitionSlot int

const (
	// SlotEnter plays on the dot becoming selected.
	SlotEnter TransitionSlot = iota
	// SlotExit plays on the dot losing selection.
	SlotExit
)

func (s TransitionSlot) String() string {
	if s == SlotExit {
		return "exit"
	}
	return "enter"
}

// transitionSlots is a pool of exactly two animators. A slot is always
// released (ended, then cancelled) before it is bound to another dot, so a
// handle never animates two dots and never writes to a discarded one.
type transitionSlots struct {
	animators [2]*animation.Animator
}

func (p *transitionSlots) get(s TransitionSlot) *animation.Animator {
	return p.animators[s]
}

// release ends and cancels the slot's animator if it is running.
func (p *transitionSlots) release(s TransitionSlot) {
	if a := p.animators[s]; a != nil && a.IsRunning() {
		a.End()
		a.Cancel()
	}
}

// play binds the slot to target and starts it.
func (p *transitionSlots) play(s TransitionSlot, target *Dot) {
	a := p.animators[s]
	if a == nil {
		return
	}
	a.SetTarget(target)
	a.Start()
}

// detach releases both slots and unbinds their targets.
func (p *transitionSlots) detach() {
	for s := range p.animators {
		p.release(TransitionSlot(s))
		if a := p.animators[s]; a != nil {
			a.SetTarget(nil)
		}
	}
}

func (p *transitionSlots) running() bool {
	for _, a := range p.animators {
		if a != nil && a.IsRunning() {
			return true
		}
	}
	return false
}

func (p *transitionSlots) dispose() {
	for _, a := range p.animators {
		if a != nil {
			a.Dispose()
		}
	}
}
