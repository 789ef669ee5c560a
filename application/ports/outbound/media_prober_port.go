package outbound

import "context"

type MediaProberPort interface {
	Duration(ctx context.Context, fileName string) (float64, error)
}
