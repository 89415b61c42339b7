// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — игровое событие
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события подписчикам синхронно, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на несколько типов событий сразу
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = slices.DeleteFunc(d.listeners[t], func(l Listener) bool {
			return l == listener
		})
	}
}

// Dispatch рассылает событие. Слушатель может отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range slices.Clone(d.listeners[event.Type]) {
		listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
