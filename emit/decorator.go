package emit

// emitterDecorator wraps an Emitter and forwards every method to it by
// embedding: a concrete decorator only needs to define the handful of
// methods it actually intercepts, and the rest fall through automatically.
type emitterDecorator struct {
	Emitter
}
