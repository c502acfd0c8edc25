package loop

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

// Keymap binds host key codes to game commands. K is the host's own key
// type, for example ebiten.Key or tcell.Key.
type Keymap[K intmap.IntKey] struct {
	bindings *intmap.Map[K, engine.Command]
}

func NewKeymap[K intmap.IntKey]() *Keymap[K] {
	return &Keymap[K]{bindings: intmap.New[K, engine.Command](8)}
}

// Bind maps key to cmd, replacing any earlier binding for key.
func (m *Keymap[K]) Bind(key K, cmd engine.Command) *Keymap[K] {
	m.bindings.Put(key, cmd)
	return m
}

func (m *Keymap[K]) Unbind(key K) {
	m.bindings.Del(key)
}

// Lookup returns the command bound to key.
func (m *Keymap[K]) Lookup(key K) (engine.Command, bool) {
	return m.bindings.Get(key)
}

func (m *Keymap[K]) Len() int {
	return m.bindings.Len()
}

// Keys calls fn for every key bound to cmd.
func (m *Keymap[K]) Keys(cmd engine.Command, fn func(K)) {
	m.bindings.ForEach(func(key K, bound engine.Command) bool {
		if bound == cmd {
			fn(key)
		}
		return true
	})
}

// Dispatch pushes the command bound to key onto the driver's input queue.
// It reports whether key was bound.
func (m *Keymap[K]) Dispatch(d *Driver, key K) bool {
	cmd, ok := m.Lookup(key)
	if ok {
		d.Push(cmd)
	}
	return ok
}
