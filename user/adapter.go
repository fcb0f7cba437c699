package user

import (
	"github.com/go-faster/errors"

	"github.com/flexible-adapter/adapters"
)

// Adapter turns entities into domain objects. It copies fields and nothing
// else; validation belongs to DomainObject.
type Adapter struct {
	engine *adapters.Adapter
}

// NewAdapter returns an Adapter backed by a plain field-copying engine.
func NewAdapter() *Adapter {
	engine := adapters.NewBuilder().
		WithOptions(adapters.WithoutAdditionalData()).
		Build()
	engine.WarmMetadata(Entity{}, DomainObject{})
	return &Adapter{engine: engine}
}

// Adapt returns a new DomainObject holding copies of the entity's fields.
func (a *Adapter) Adapt(e *Entity) (DomainObject, error) {
	if e == nil {
		return DomainObject{}, errors.New("adapt: nil entity")
	}
	d, err := adapters.Make[DomainObject](a.engine, e)
	if err != nil {
		return DomainObject{}, errors.Wrap(err, "adapt entity")
	}
	return d, nil
}
