package systems

import (
	"fmt"

	"go.uber.org/zap"

	"heaven-through-violence/ecs"
)

// Spawner is the part of the entity spawner the spawn system needs
type Spawner interface {
	CreateBlock(x, y float64) (*ecs.Entity, error)
	CreateEnemy(x, y float64) (*ecs.Entity, error)
}

// SpawnSystem queues SpawnRequestEvents and fulfils them on its update
type SpawnSystem struct {
	spawner Spawner
	pending []SpawnRequestEvent
	logger  *zap.Logger
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(spawner Spawner, logger *zap.Logger) *SpawnSystem {
	return &SpawnSystem{spawner: spawner, logger: logger}
}

// Initialize subscribes to spawn requests
func (s *SpawnSystem) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(EventSpawnRequest, func(event ecs.Event) {
		s.pending = append(s.pending, event.(SpawnRequestEvent))
	})
}

// Update spawns everything requested since the last update
func (s *SpawnSystem) Update(world *ecs.World, dt float64) error {
	requests := s.pending
	s.pending = nil

	for _, req := range requests {
		var (
			entity *ecs.Entity
			err    error
		)
		switch req.Kind {
		case SpawnBlock:
			entity, err = s.spawner.CreateBlock(req.X, req.Y)
		case SpawnEnemy:
			entity, err = s.spawner.CreateEnemy(req.X, req.Y)
		default:
			return fmt.Errorf("unknown spawn kind %d", req.Kind)
		}
		if err != nil {
			return err
		}
		s.logger.Debug("spawn request fulfilled", zap.Stringer("kind", req.Kind), zap.Uint64("entity", uint64(entity.ID)))
	}
	return nil
}
