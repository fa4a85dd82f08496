package common

const (
	// MaxCommentRunes limits review comment length to keep payloads sane.
	MaxCommentRunes = 2000
	// MaxRequestBody limits JSON request bodies for review/business endpoints.
	MaxRequestBody = 1 << 20
)
