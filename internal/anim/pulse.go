package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Rest is the resting scale of a dot.
const Rest = 1.0

// Settling thresholds, in scale units and scale units per second.
const (
	settleDistance = 0.01
	settleVelocity = 0.1
)

type pulsePhase int

const (
	phaseIdle pulsePhase = iota
	phaseUp
	phaseDown
)

// Pulse springs a scale from Rest toward a peak, then back to Rest.
type Pulse struct {
	spring   harmonica.Spring
	peak     float64
	scale    float64
	velocity float64
	phase    pulsePhase
}

// NewPulse returns a pulse at rest. fps is the frame rate Step is called at.
func NewPulse(fps int, frequency, damping, peak float64) *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		peak:   peak,
		scale:  Rest,
	}
}

// Trigger starts the pop, or restarts it from the current scale and velocity.
func (p *Pulse) Trigger() {
	p.phase = phaseUp
}

// Step advances the spring one frame.
func (p *Pulse) Step() {
	if p.phase == phaseIdle {
		return
	}

	target := p.peak
	if p.phase == phaseDown {
		target = Rest
	}
	p.scale, p.velocity = p.spring.Update(p.scale, p.velocity, target)

	if math.Abs(p.scale-target) > settleDistance || math.Abs(p.velocity) > settleVelocity {
		return
	}
	if p.phase == phaseUp {
		p.phase = phaseDown
		return
	}
	p.scale = Rest
	p.velocity = 0
	p.phase = phaseIdle
}

// Scale is the current dot scale.
func (p *Pulse) Scale() float64 {
	return p.scale
}

// Active reports whether the pulse is still moving.
func (p *Pulse) Active() bool {
	return p.phase != phaseIdle
}

// Pulses keeps one ephemeral Pulse per option index. Settled pulses are dropped.
type Pulses struct {
	fps       int
	frequency float64
	damping   float64
	peak      float64
	drivers   map[int]*Pulse
}

// NewPulses returns an empty set of pulse drivers sharing spring parameters.
func NewPulses(fps int, frequency, damping, peak float64) *Pulses {
	return &Pulses{
		fps:       fps,
		frequency: frequency,
		damping:   damping,
		peak:      peak,
		drivers:   make(map[int]*Pulse),
	}
}

// Trigger pops the dot at index.
func (ps *Pulses) Trigger(index int) {
	p, ok := ps.drivers[index]
	if !ok {
		p = NewPulse(ps.fps, ps.frequency, ps.damping, ps.peak)
		ps.drivers[index] = p
	}
	p.Trigger()
}

// Step advances every live pulse one frame.
func (ps *Pulses) Step() {
	for i, p := range ps.drivers {
		p.Step()
		if !p.Active() {
			delete(ps.drivers, i)
		}
	}
}

// Scale returns the scale of the dot at index; Rest when it is not pulsing.
func (ps *Pulses) Scale(index int) float64 {
	if p, ok := ps.drivers[index]; ok {
		return p.Scale()
	}
	return Rest
}

// Active reports whether any pulse is in flight.
func (ps *Pulses) Active() bool {
	return len(ps.drivers) > 0
}

// Scales returns the current scale of the first n dots.
func (ps *Pulses) Scales(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = ps.Scale(i)
	}
	return out
}
