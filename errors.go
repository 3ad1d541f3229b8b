package bindology

import "github.com/ygrebnov/errorc"

const Namespace = "bindology"

var namespace = errorc.Namespace(Namespace)

// Sentinel errors surfaced by the mapper. Use errors.Is to match.
var (
	//ErrConfiguration reports a mapping whose widget or model endpoint could not be resolved
	ErrConfiguration = namespace.NewError("binding configuration invalid")
	//ErrConversion reports a converter failure on the propagation path
	ErrConversion = namespace.NewError("value conversion failed")
	//ErrSignalWiring reports a change notification source that does not resolve
	ErrSignalWiring = namespace.NewError("signal wiring failed")
)

var newKey = errorc.KeyFactory(errorc.WithSegments(Namespace))

// Structured error field keys. Keep string values stable for log queries.
var (
	ErrorFieldEndpoint  = newKey("endpoint") // bindology.endpoint: widget or model
	ErrorFieldName      = newKey("name")
	ErrorFieldOwnerType = newKey("owner_type")
	ErrorFieldCause     = newKey("cause")
)

const (
	endpointWidget = "widget"
	endpointModel  = "model"
)
