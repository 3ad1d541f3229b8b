package bindology

import (
	"sync"

	"github.com/viant/bindology/accessor"
	"github.com/viant/bindology/conv"
	"github.com/viant/bindology/signal"
	"github.com/ygrebnov/errorc"
)

// Binding links one widget value to one model value with an optional
// converter. It is live while both subscriptions are active and cleared once
// torn down; the transition is one way and a cleared binding is never reused.
type Binding struct {
	widget    accessor.Accessor
	model     accessor.Accessor
	converter conv.Converter

	widgetSignal *signal.Signal
	modelSignal  *signal.Signal
	widgetToken  *signal.Token
	modelToken   *signal.Token

	mapper *Mapper

	mux     sync.Mutex
	cleared bool
}

// Live reports whether the binding still propagates changes
func (b *Binding) Live() bool {
	b.mux.Lock()
	defer b.mux.Unlock()
	return !b.cleared
}

// Clear disconnects both subscriptions, removes the binding from its mapper
// and marks it cleared. It is idempotent and no-ops on subscriptions already
// removed or on a source that is gone.
func (b *Binding) Clear() error {
	b.mux.Lock()
	if b.cleared {
		b.mux.Unlock()
		return nil
	}
	b.cleared = true
	b.mux.Unlock()
	if b.widgetSignal != nil {
		b.widgetSignal.Unsubscribe(b.widgetToken)
	}
	if b.modelSignal != nil {
		b.modelSignal.Unsubscribe(b.modelToken)
	}
	if b.mapper != nil {
		b.mapper.remove(b)
	}
	return nil
}

// onWidgetChange propagates a widget originated change to the model. The
// model side subscription is suppressed around the write so the resulting
// notification is not echoed back; other subscribers of the model notifier
// still fire.
func (b *Binding) onWidgetChange(interface{}) error {
	if !b.Live() {
		return nil
	}
	converted, err := b.converter.WidgetToModel(b.widget.Value())
	if err != nil {
		return errorc.With(ErrConversion,
			errorc.String(ErrorFieldEndpoint, endpointWidget),
			errorc.String(ErrorFieldCause, err.Error()))
	}
	if b.modelSignal != nil {
		b.modelSignal.Suppress(b.modelToken)
		defer b.modelSignal.Resume(b.modelToken)
	}
	return b.model.SetValue(converted)
}

// onModelChange propagates a model originated change to the widget,
// suppressing the widget side subscription around the write.
func (b *Binding) onModelChange(interface{}) error {
	if !b.Live() {
		return nil
	}
	converted, err := b.converter.ModelToWidget(b.model.Value())
	if err != nil {
		return errorc.With(ErrConversion,
			errorc.String(ErrorFieldEndpoint, endpointModel),
			errorc.String(ErrorFieldCause, err.Error()))
	}
	b.widgetSignal.Suppress(b.widgetToken)
	defer b.widgetSignal.Resume(b.widgetToken)
	return b.widget.SetValue(converted)
}
