package input

// Bindings maps application-defined semantic actions to the physical inputs
// that trigger them. B is the action type; any comparable value works (an
// int-based enum, a string). One action may have many inputs and one input
// may serve many actions.
type Bindings[B comparable] struct {
	keyMap map[B][]ID
}

// NewBindings returns an empty binding table.
func NewBindings[B comparable]() *Bindings[B] {
	return &Bindings[B]{keyMap: make(map[B][]ID)}
}

// Bind attaches id to action. Binding the same pair twice is a no-op; the
// list keeps set semantics over insertion order. The duplicate scan is O(n)
// over the action's list, which stays short and is touched mostly at
// startup.
func (b *Bindings[B]) Bind(id ID, action B) {
	list := b.keyMap[action]
	for _, bound := range list {
		if bound == id {
			return
		}
	}
	b.keyMap[action] = append(list, id)
}

// Unbind removes every occurrence of id from action's list.
func (b *Bindings[B]) Unbind(id ID, action B) {
	list := b.keyMap[action]
	kept := list[:0]
	for _, bound := range list {
		if bound != id {
			kept = append(kept, bound)
		}
	}
	b.keyMap[action] = kept
}

// Transform returns the inputs bound to action, in insertion order. An
// unbound action yields an empty slice, never an error. Callers must not
// mutate the returned slice.
func (b *Bindings[B]) Transform(action B) []ID {
	return b.keyMap[action]
}

// Actions returns every action that has at least one binding. Order is
// unspecified.
func (b *Bindings[B]) Actions() []B {
	out := make([]B, 0, len(b.keyMap))
	for action, list := range b.keyMap {
		if len(list) > 0 {
			out = append(out, action)
		}
	}
	return out
}
