package input

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleDepthTest
	ActionToggleBlend
	ActionToggleWireframe
	ActionToggleCulling
	ActionCount // Sentinel value for validation
)

var actionNames = [...]string{
	ActionNone:            "None",
	ActionQuit:            "Quit",
	ActionToggleDepthTest: "ToggleDepthTest",
	ActionToggleBlend:     "ToggleBlend",
	ActionToggleWireframe: "ToggleWireframe",
	ActionToggleCulling:   "ToggleCulling",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// Bindings maps keys to actions
type Bindings struct {
	keyToAction map[Key]Action
}

// DefaultBindings binds Escape to quit and one letter per render toggle
func DefaultBindings() *Bindings {
	b := &Bindings{keyToAction: make(map[Key]Action)}
	b.Bind(KeyEscape, ActionQuit)
	b.Bind(KeyD, ActionToggleDepthTest)
	b.Bind(KeyB, ActionToggleBlend)
	b.Bind(KeyF, ActionToggleWireframe)
	b.Bind(KeyC, ActionToggleCulling)
	return b
}

// Bind binds a key to an action, replacing any previous binding of that key
func (b *Bindings) Bind(key Key, action Action) {
	if action <= ActionNone || action >= ActionCount || key == KeyUnknown {
		return
	}
	b.keyToAction[key] = action
}

// Unbind removes the binding of a key
func (b *Bindings) Unbind(key Key) {
	delete(b.keyToAction, key)
}

// ActionFor returns the action triggered by e. Quit fires on every key-down,
// including auto-repeat; toggles fire on the initial press only.
func (b *Bindings) ActionFor(e Event) Action {
	if e.Kind == EventQuit {
		return ActionQuit
	}
	if e.Kind != EventKey || !e.Pressed {
		return ActionNone
	}
	action, ok := b.keyToAction[e.Key]
	if !ok {
		return ActionNone
	}
	if e.Repeat && action != ActionQuit {
		return ActionNone
	}
	return action
}
