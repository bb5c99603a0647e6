// Package textgen wraps the external text generation service behind a single
// stateless operation: prompt in, text out. Each call is self-contained; no
// conversation memory is kept across calls.
package textgen

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
