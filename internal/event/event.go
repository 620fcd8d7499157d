// internal/event/event.go
package event

// EventType names one kind of simulation event.
type EventType string

// Event carries a type and an optional payload. The simulation never reads
// events back; they exist for the rendering/HUD layer.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is the interface for event subscribers.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers, synchronously and in
// subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes a previously registered listener.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
