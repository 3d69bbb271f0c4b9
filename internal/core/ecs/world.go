package ecs

// World is the top-level arena. It owns the entity pool and the component
// registry. Destruction is immediate: once Destroy returns, the entity is gone
// from every store and any later lookup in the same tick misses.
type World struct {
	pool     *EntityPool
	registry *Registry
}

func NewWorld() *World {
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Destroy removes the entity's components and retires its id. It returns
// false, doing nothing, when the entity is already gone.
func (w *World) Destroy(id EntityID) bool {
	if !w.pool.Destroy(id) {
		return false
	}
	w.registry.RemoveAll(id)
	return true
}
