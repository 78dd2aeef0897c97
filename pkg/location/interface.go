package location

import "context"

// Resolver turns a postcode and suburb into the location id the weather
// provider keys its data on. One postcode can cover multiple suburbs, which
// is why both are required.
type Resolver interface {
	// Resolve returns the location id for the suburb, or
	// types.ErrLocationNotFound when the pair matches nothing.
	Resolve(ctx context.Context, postcode int, suburb string) (string, error)
}
