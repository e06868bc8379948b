package middleware

import "context"

type holderKey struct{}

// identityHolder передает node_id из внутренних middleware во внешние
type identityHolder struct {
	nodeID string
}

func withHolder(ctx context.Context, h *identityHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func holderFrom(ctx context.Context) *identityHolder {
	h, _ := ctx.Value(holderKey{}).(*identityHolder)
	return h
}
