package lagerfx

import (
	"errors"

	"go.uber.org/fx"

	"github.com/0xalexb/lager"
)

// Group is the name of the fx value group collecting every provider
// registered via Module.
const Group = "lager.providers"

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("provider module name must not be empty")

// ErrNilProvider is returned when a nil provider is given.
var ErrNilProvider = errors.New("provider must not be nil")

// Module creates an Fx module that supplies p into the "lager.providers"
// value group under name. Consumers declare the group as a parameter:
//
//	fx.Annotate(
//		func(providers []lager.Provider) { ... },
//		fx.ParamTags(`group:"lager.providers"`),
//	)
//
// Call multiple times with different names to register multiple layers.
// Fx does not guarantee group ordering; an engine that needs a
// deterministic layer order must impose one itself.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, p lager.Provider) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if p == nil {
		return fx.Error(ErrNilProvider)
	}

	return fx.Module(name, fx.Supply(
		fx.Annotate(p, fx.As(new(lager.Provider)), fx.ResultTags(`group:"lager.providers"`)),
	))
}
