package waste

import "context"

// Source provides the raw schedule text. Implementations live in infra.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}
