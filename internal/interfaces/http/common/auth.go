package common

import "context"

type contextKey string

const authUserContextKey contextKey = "petnavi.authUser"

// AuthenticatedUser は JWT 検証を通過した呼び出し主体。
// Public のレビュー投稿者と Owner のリスティング管理者の両方をこの 1 型で表す。
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Picture  string `json:"picture,omitempty"`
}

// ContextWithUser returns a context carrying the authenticated user.
func ContextWithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// UserFromContext extracts the authenticated user set by the auth middleware.
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(AuthenticatedUser)
	return user, ok
}
