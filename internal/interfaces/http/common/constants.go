package common

const (
	// MaxFormRequestBody limits form submission bodies.
	MaxFormRequestBody = 1 << 20
	// MaxChatRequestBody limits chat proxy request bodies.
	MaxChatRequestBody = 1 << 20
	// MaxUpstreamBody bounds how much of an upstream chat response is buffered.
	MaxUpstreamBody = 8 << 20
	// ExcerptRunes is the length of upstream excerpts embedded in error bodies.
	ExcerptRunes = 200
)
