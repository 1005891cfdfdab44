package ecs

import (
	"fmt"
	"slices"
)

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags   map[string]map[EntityID]bool
	eventManager *EventManager
	lastID       EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.lastID++
	entity := newEntity(w.lastID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity. Adding to an unknown entity is a no-op.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(entityID, componentID)
	return ok
}

// Get is a typed GetComponent. It reports false when the entity lacks the
// component or when the stored component is not a T.
func Get[T any](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	comp, ok := w.GetComponent(entityID, componentID)
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddSystem adds a system to the world. Systems run in the order they were added.
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system once, stopping at the first error.
func (w *World) Update(dt float64) error {
	for i, system := range w.systems {
		if err := system.Update(w, dt); err != nil {
			return fmt.Errorf("system %d (%T): %w", i, system, err)
		}
	}
	return nil
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortByID(entities)
	return entities
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			entities = append(entities, w.entities[id])
		}
	}
	sortByID(entities)
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

func sortByID(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
