// Package view injects customer section into account view page
package view

import "context"

// Renderer renders named template against data
type Renderer interface {
	Render(name string, data any) (string, error)
}

// EntityReferencer builds entity reference without loading entity
type EntityReferencer interface {
	Reference(ctx context.Context, id int64) any
}

// ConfigStore is key-value configuration lookup
type ConfigStore interface {
	Get(key string) string
}

// Translator translates message key
type Translator interface {
	Trans(key string) string
}

// Request exposes parameters of incoming request
type Request interface {
	Param(name string) (string, bool)
}

// RequestStack provides current request, nil if there is no one
type RequestStack interface {
	CurrentRequest(ctx context.Context) Request
}

// BeforeListRenderEvent is raised before view page sections are rendered
type BeforeListRenderEvent struct {
	Environment Renderer
	ScrollData  *ScrollData
}

// NewBeforeListRenderEvent builds event with empty scroll data
func NewBeforeListRenderEvent(env Renderer) *BeforeListRenderEvent {
	return &BeforeListRenderEvent{Environment: env, ScrollData: NewScrollData()}
}

type requestCtxKey struct{}

// WithRequest puts request into context
func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestCtxKey{}, r)
}

type contextRequestStack struct{}

// NewContextRequestStack builds request stack which takes request from context
func NewContextRequestStack() RequestStack {
	return contextRequestStack{}
}

func (contextRequestStack) CurrentRequest(ctx context.Context) Request {
	if r, ok := ctx.Value(requestCtxKey{}).(Request); ok {
		return r
	}
	return nil
}

// ParamsRequest is request backed by plain parameters map
type ParamsRequest map[string]string

// Param returns request parameter
func (r ParamsRequest) Param(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}
