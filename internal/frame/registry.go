package frame

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownHandler  = errors.New("unknown handler")
)

type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Template is a named set of handlers plus the config a fresh frame starts with.
type Template struct {
	Name          string
	DefaultConfig func() ([]byte, error)
	Handlers      map[string]HandlerFunc
}

type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

func (r *Registry) Register(t *Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.Name] = t
}

func (r *Registry) Template(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	return t, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named handler of a template.
func (r *Registry) Dispatch(ctx context.Context, template string, req *Request) (*Response, error) {
	t, err := r.Template(template)
	if err != nil {
		return nil, err
	}

	handler, ok := t.Handlers[req.Handler]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownHandler, template, req.Handler)
	}
	return handler(ctx, req)
}
