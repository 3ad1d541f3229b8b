package bindology

import (
	"github.com/viant/bindology/accessor"
	"github.com/viant/bindology/conv"
	"github.com/viant/bindology/signal"
)

type (
	mappingOptions struct {
		widget    endpointOptions
		model     endpointOptions
		converter conv.Converter
	}

	endpointOptions struct {
		access     accessor.Accessor
		getterName string
		setterName string
		fieldPath  string
		signal     *signal.Signal
		signalName string
	}

	//Option customizes a single AddMapping call
	Option func(o *mappingOptions)
)

func newMappingOptions(opts []Option) *mappingOptions {
	result := &mappingOptions{converter: conv.Identity()}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// WithWidgetAccess sets an explicit widget accessor pair
func WithWidgetAccess(get func() interface{}, set func(value interface{}) error) Option {
	return func(o *mappingOptions) {
		o.widget.access = accessor.Funcs(get, set)
	}
}

// WithWidgetField binds the widget endpoint to the named attribute, resolved
// by reflection; nested paths with slice indexing are supported.
func WithWidgetField(path string) Option {
	return func(o *mappingOptions) {
		o.widget.fieldPath = path
	}
}

// WithWidgetMethods binds the widget endpoint to a named getter/setter method pair
func WithWidgetMethods(getter, setter string) Option {
	return func(o *mappingOptions) {
		o.widget.getterName = getter
		o.widget.setterName = setter
	}
}

// WithWidgetSignal sets the widget change notification source
func WithWidgetSignal(source *signal.Signal) Option {
	return func(o *mappingOptions) {
		o.widget.signal = source
	}
}

// WithWidgetSignalName names the widget change notification source, resolved
// by reflection against the widget.
func WithWidgetSignalName(name string) Option {
	return func(o *mappingOptions) {
		o.widget.signalName = name
	}
}

// WithModelAccess sets an explicit model accessor pair
func WithModelAccess(get func() interface{}, set func(value interface{}) error) Option {
	return func(o *mappingOptions) {
		o.model.access = accessor.Funcs(get, set)
	}
}

// WithModelField binds the model endpoint to the named attribute, resolved by
// reflection; nested paths with slice indexing are supported.
func WithModelField(path string) Option {
	return func(o *mappingOptions) {
		o.model.fieldPath = path
	}
}

// WithModelMethods binds the model endpoint to a named getter/setter method pair
func WithModelMethods(getter, setter string) Option {
	return func(o *mappingOptions) {
		o.model.getterName = getter
		o.model.setterName = setter
	}
}

// WithModelNotifier sets the model change notification source; without one the
// model is write only from the GUI's perspective.
func WithModelNotifier(source *signal.Signal) Option {
	return func(o *mappingOptions) {
		o.model.signal = source
	}
}

// WithModelNotifierName names the model change notification source, resolved
// by reflection against the model.
func WithModelNotifierName(name string) Option {
	return func(o *mappingOptions) {
		o.model.signalName = name
	}
}

// WithConverter sets the bidirectional value converter; identity by default
func WithConverter(converter conv.Converter) Option {
	return func(o *mappingOptions) {
		o.converter = converter
	}
}
