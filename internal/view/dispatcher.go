package view

import "context"

// Listener handles BeforeListRenderEvent
type Listener interface {
	OnView(context.Context, *BeforeListRenderEvent) error
}

// Dispatcher notifies listeners in order of registration
type Dispatcher struct {
	listeners []Listener
}

// NewDispatcher builds Dispatcher
func NewDispatcher(listeners ...Listener) *Dispatcher {
	return &Dispatcher{listeners: listeners}
}

// Dispatch stops on first listener error
func (d *Dispatcher) Dispatch(ctx context.Context, e *BeforeListRenderEvent) error {
	for _, l := range d.listeners {
		if err := l.OnView(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
