package conv

// Converter transforms values between widget space and model space
// representations. Implementations must be pure, deterministic functions of
// their single input; both directions run synchronously on the propagation
// path. Supplying directions that do not round trip is a caller error and is
// not validated here.
type Converter interface {
	WidgetToModel(value interface{}) (interface{}, error)
	ModelToWidget(value interface{}) (interface{}, error)
}

// Func adapts an ordinary function to one conversion direction.
type Func func(value interface{}) (interface{}, error)

type identity struct{}

func (identity) WidgetToModel(value interface{}) (interface{}, error) {
	return value, nil
}

func (identity) ModelToWidget(value interface{}) (interface{}, error) {
	return value, nil
}

// Identity returns a converter that passes values through unchanged.
func Identity() Converter {
	return identity{}
}

type pair struct {
	widgetToModel Func
	modelToWidget Func
}

func (p pair) WidgetToModel(value interface{}) (interface{}, error) {
	if p.widgetToModel == nil {
		return value, nil
	}
	return p.widgetToModel(value)
}

func (p pair) ModelToWidget(value interface{}) (interface{}, error) {
	if p.modelToWidget == nil {
		return value, nil
	}
	return p.modelToWidget(value)
}

// Pair builds a converter from two direction functions; a nil function leaves
// that direction as identity.
func Pair(widgetToModel, modelToWidget Func) Converter {
	return pair{widgetToModel: widgetToModel, modelToWidget: modelToWidget}
}
