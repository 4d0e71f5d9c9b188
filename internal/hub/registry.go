package hub

import "sync"

// Conn is a live client connection able to receive order events.
type Conn interface {
	ID() string
	// Deliver enqueues an event without blocking. Delivery is best-effort:
	// events to slow or closed connections may be dropped.
	Deliver(event any)
}

// Registry tracks which connections are subscribed to which shop's event
// stream. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	shops map[string]map[string]Conn     // shop id -> conn id -> conn
	conns map[string]map[string]struct{} // conn id -> shop ids
}

func NewRegistry() *Registry {
	return &Registry{
		shops: make(map[string]map[string]Conn),
		conns: make(map[string]map[string]struct{}),
	}
}

// Join subscribes conn to the shop's stream. Repeated joins are no-ops.
// Returns false for an empty shop id.
func (r *Registry) Join(conn Conn, shopID string) bool {
	if shopID == "" || conn == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.shops[shopID]
	if !ok {
		set = make(map[string]Conn)
		r.shops[shopID] = set
	}
	set[conn.ID()] = conn

	shops, ok := r.conns[conn.ID()]
	if !ok {
		shops = make(map[string]struct{})
		r.conns[conn.ID()] = shops
	}
	shops[shopID] = struct{}{}
	return true
}

// Leave removes the connection from the shop's subscriber set. Removing a
// non-member is not an error.
func (r *Registry) Leave(connID, shopID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(connID, shopID)
}

// Subscribers returns a snapshot of the shop's current subscriber set.
func (r *Registry) Subscribers(shopID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.shops[shopID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Conn, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	return out
}

// OnDisconnect removes the connection from every shop set it belonged to.
// Invoked by the network layer on connection loss.
func (r *Registry) OnDisconnect(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for shopID := range r.conns[connID] {
		r.remove(connID, shopID)
	}
}

// caller must hold mu.
func (r *Registry) remove(connID, shopID string) {
	if set, ok := r.shops[shopID]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(r.shops, shopID)
		}
	}
	if shops, ok := r.conns[connID]; ok {
		delete(shops, shopID)
		if len(shops) == 0 {
			delete(r.conns, connID)
		}
	}
}
