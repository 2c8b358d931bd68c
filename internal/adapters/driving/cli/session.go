package cli

import (
	"context"
	"fmt"
)

// sessionUserKey is the config key holding the CLI's persistent user ID.
const sessionUserKey = "session.user_id"

// currentUserID returns the CLI session user, creating one on first use.
// The ID is kept in the config file so documents survive between runs.
func currentUserID(ctx context.Context) (string, error) {
	if configStore != nil {
		if id := configStore.GetString(sessionUserKey); id != "" {
			if _, err := sessionService.Touch(ctx, id); err != nil {
				return "", fmt.Errorf("refresh session: %w", err)
			}
			return id, nil
		}
	}

	user, err := sessionService.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}

	if configStore != nil {
		if err := configStore.Set(sessionUserKey, user.ID); err != nil {
			return "", fmt.Errorf("persist session: %w", err)
		}
	}

	return user.ID, nil
}
