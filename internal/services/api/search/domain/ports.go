package domain

import "context"

// ServicePort defines the service contract for occupation search
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (Response, error)
}
