package decoders

import (
	"github.com/custodia-labs/triscore/internal/decoders/delimited"
	"github.com/custodia-labs/triscore/internal/decoders/jsonstat"
)

// RegisterDefaults registers the built-in decoders with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(delimited.New())
	r.Register(jsonstat.New())
}
