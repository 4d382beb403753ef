package auth

import "context"

type ownerKey struct{}

// WithOwner кладёт идентификатор аутентифицированного владельца в контекст запроса.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext возвращает идентификатор владельца, если запрос аутентифицирован.
func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerKey{}).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
