package ports

import "context"

type bearerKey struct{}

// WithBearer returns a context whose store API calls carry token as the
// bearer credential. The query cache scopes its entries by the same token.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerFrom returns the token stored by WithBearer, or "".
func BearerFrom(ctx context.Context) string {
	tok, _ := ctx.Value(bearerKey{}).(string)
	return tok
}
