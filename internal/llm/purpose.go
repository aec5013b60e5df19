package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with a short label ("question-gen",
// "definition") that ends up on the request event, so usage can be
// broken down per feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func purposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeKey{}).(string); p != "" {
		return p
	}
	return "unknown"
}
