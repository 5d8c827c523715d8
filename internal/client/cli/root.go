package cli

import (
	"context"
)

// Root prints the greeting and runs the REPL on stdin until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to MovieKeeper (type 'help' for commands)")
	if acc, ok := a.store.CurrentAccount(); ok {
		printlnFn("Welcome back,", acc.Username)
		a.log.Info(ctx, "session restored", "user", acc.Username)
	}

	runREPL(ctx, a, a.getStatus, a.in)
}
