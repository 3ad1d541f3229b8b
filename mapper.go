// Package bindology keeps a GUI widget's displayed value and a logic object's
// attribute in sync: change notifications wired in both directions, an
// optional bidirectional converter between widget space and model space
// values, and per binding loop prevention. Widgets, models and the event loop
// belong to the host toolkit; the mapper only registers accessors and
// callbacks against them and never owns their lifetime.
package bindology

import (
	"errors"
	"sync"

	"github.com/ygrebnov/errorc"
)

// Mapper owns a collection of active bindings and provides bulk teardown.
type Mapper struct {
	mux      sync.Mutex
	bindings []*Binding
}

// New creates a mapper
func New() *Mapper {
	return &Mapper{}
}

// AddMapping binds a widget value to a model value. Endpoint accessors and
// notification sources resolve from options, falling back to the owner's
// conventional accessor and signal.Notifier contract. The model's current
// value is pushed into the widget once before any subscription is made, so
// registration mutates the widget exactly once and triggers no propagation.
func (m *Mapper) AddMapping(widget, model interface{}, opts ...Option) (*Binding, error) {
	if widget == nil || model == nil {
		return nil, errorc.With(ErrConfiguration,
			errorc.String(ErrorFieldCause, "widget and model are required"))
	}
	options := newMappingOptions(opts)
	widgetAccess, err := resolveAccess(endpointWidget, widget, &options.widget)
	if err != nil {
		return nil, err
	}
	modelAccess, err := resolveAccess(endpointModel, model, &options.model)
	if err != nil {
		return nil, err
	}
	widgetSignal, err := resolveSignal(endpointWidget, widget, &options.widget, true)
	if err != nil {
		return nil, err
	}
	modelSignal, err := resolveSignal(endpointModel, model, &options.model, false)
	if err != nil {
		return nil, err
	}
	binding := &Binding{
		mapper:       m,
		widget:       widgetAccess,
		model:        modelAccess,
		converter:    options.converter,
		widgetSignal: widgetSignal,
		modelSignal:  modelSignal,
	}
	initial, err := options.converter.ModelToWidget(modelAccess.Value())
	if err != nil {
		return nil, errorc.With(ErrConversion,
			errorc.String(ErrorFieldEndpoint, endpointModel),
			errorc.String(ErrorFieldCause, err.Error()))
	}
	if err = widgetAccess.SetValue(initial); err != nil {
		return nil, err
	}
	binding.widgetToken = widgetSignal.Subscribe(binding.onWidgetChange)
	if modelSignal != nil {
		binding.modelToken = modelSignal.Subscribe(binding.onModelChange)
	}
	m.mux.Lock()
	m.bindings = append(m.bindings, binding)
	m.mux.Unlock()
	return binding, nil
}

// ClearMappings tears down every held binding and removes it. It is
// idempotent, tolerates per binding teardown failures and returns them
// joined; after it returns no previously mapped pair propagates.
func (m *Mapper) ClearMappings() error {
	m.mux.Lock()
	bindings := m.bindings
	m.bindings = nil
	m.mux.Unlock()
	var errs []error
	for _, binding := range bindings {
		if err := binding.Clear(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of live bindings
func (m *Mapper) Len() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return len(m.bindings)
}

// remove drops a binding cleared individually from the registry
func (m *Mapper) remove(binding *Binding) {
	m.mux.Lock()
	defer m.mux.Unlock()
	for i, candidate := range m.bindings {
		if candidate == binding {
			m.bindings = append(m.bindings[:i], m.bindings[i+1:]...)
			return
		}
	}
}
