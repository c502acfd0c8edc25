package engine

import "strings"

// Command is a player input understood by the engine.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
)

var commandNames = map[Command]string{
	CommandNone:      "NONE",
	CommandMoveLeft:  "MOVE_LEFT",
	CommandMoveRight: "MOVE_RIGHT",
	CommandSoftDrop:  "SOFT_DROP",
	CommandRotate:    "ROTATE",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseCommand maps a command name such as "MOVE_LEFT" or "rotate" to its
// Command. Unknown names yield CommandNone and false.
func ParseCommand(s string) (Command, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for cmd, name := range commandNames {
		if cmd != CommandNone && name == s {
			return cmd, true
		}
	}
	return CommandNone, false
}

// EventType identifies a lifecycle or gameplay notification.
type EventType uint8

const (
	EventStarted EventType = iota + 1
	EventLocked
	EventRowsCleared
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventLocked:
		return "locked"
	case EventRowsCleared:
		return "rows-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners. Score, Level and Lines describe the
// state at the moment the event fired; for EventGameOver that is the final
// state of the finished game. Rows is set for EventRowsCleared.
type Event struct {
	Type  EventType
	Score int
	Level int
	Lines int
	Rows  int
}

// Listener receives engine events. Implementations are fire-and-forget;
// the engine ignores anything they do.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
