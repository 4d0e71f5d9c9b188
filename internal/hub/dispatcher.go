package hub

// Dispatcher publishes event envelopes to a shop's subscriber set and to the
// originating connection. Fire-and-forget: delivery rides each Conn's
// non-blocking Deliver, so a slow subscriber never stalls Publish.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Publish delivers event to every current subscriber of the shop, and to
// caller if it is not already among them. A caller who is also a subscriber
// receives the event exactly once.
func (d *Dispatcher) Publish(shopID string, caller Conn, event any) {
	callerSeen := caller == nil
	for _, c := range d.registry.Subscribers(shopID) {
		if !callerSeen && c.ID() == caller.ID() {
			callerSeen = true
		}
		c.Deliver(event)
	}
	if !callerSeen {
		caller.Deliver(event)
	}
}
