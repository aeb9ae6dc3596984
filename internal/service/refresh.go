package service

import (
	"context"
	"log/slog"
)

// reloadAfter runs a mutation against the backend, then reloads fresh rows
// regardless of the mutation's outcome. Screens clear their lists before
// the mutation, so the reload repopulates them either way. The mutation
// error is preserved for the caller's notice; a reload failure is logged
// and leaves the list empty until the user refreshes manually.
func reloadAfter[T any](
	ctx context.Context,
	logger *slog.Logger,
	mutate func(context.Context) (string, error),
	reload func(context.Context) ([]T, error),
) ([]T, string, error) {
	msg, mutErr := mutate(ctx)

	rows, err := reload(ctx)
	if err != nil {
		logger.Error("reload after mutation failed", "error", err)
		rows = nil
	}

	if mutErr != nil {
		return rows, "", mutErr
	}
	return rows, msg, nil
}
