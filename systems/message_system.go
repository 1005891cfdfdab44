package systems

import (
	"fmt"

	"heaven-through-violence/ecs"
)

// MessageLog stores player-facing messages
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// MessageSystem turns game events into message log lines
type MessageSystem struct {
	log *MessageLog
}

// NewMessageSystem creates a message system writing to log
func NewMessageSystem(log *MessageLog) *MessageSystem {
	return &MessageSystem{log: log}
}

// Initialize subscribes to the events worth telling the player about
func (s *MessageSystem) Initialize(world *ecs.World) {
	em := world.GetEventManager()
	em.Subscribe(EventGamepadConnection, s.handleGamepad)
	em.Subscribe(EventPauseToggled, s.handlePause)
	em.Subscribe(EventScene, s.handleScene)
}

func (s *MessageSystem) handleGamepad(event ecs.Event) {
	e := event.(GamepadConnectionEvent)
	if e.Connected {
		s.log.Add(fmt.Sprintf("Gamepad %d connected", e.GamepadID))
	} else {
		s.log.Add(fmt.Sprintf("Gamepad %d disconnected", e.GamepadID))
	}
}

func (s *MessageSystem) handlePause(event ecs.Event) {
	if event.(PauseToggledEvent).Paused {
		s.log.Add("Paused")
	} else {
		s.log.Add("Resumed")
	}
}

func (s *MessageSystem) handleScene(event ecs.Event) {
	e := event.(SceneEvent)
	if e.Err != nil {
		s.log.Add(fmt.Sprintf("Scene %s failed: %v", e.Action, e.Err))
		return
	}
	s.log.Add(fmt.Sprintf("Scene %s: %d entities (%s)", e.Action, e.Entities, e.Path))
}
