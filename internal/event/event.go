// internal/event/event.go
package event

import "sync"

// EventType тип события
type EventType string

// Event структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher диспетчер событий
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				updated := make([]Listener, 0, len(listeners)-1)
				updated = append(updated, listeners[:i]...)
				d.listeners[eventType] = append(updated, listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch отправка события всем подписчикам.
// Подписчики могут подписываться и отписываться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	listeners := d.listeners[event.Type]
	d.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
