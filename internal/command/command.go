package command

import "context"

// Command is the shared shape of all commands: a request in, a result
// out, always context-aware.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is the result type for commands that only report an error.
type Empty struct{}
