package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/engine"
	"github.com/dfontes/prazo/internal/service"
)

// resolveClient turns user input (a code or a name fragment) into the stored
// client, trying the exact code first the way the search box does.
func resolveClient(ctx context.Context, app *App, input string) (*domain.Client, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("client code is required")
	}
	c, err := app.Clients.Get(ctx, input)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, service.ErrClientNotFound) {
		return nil, err
	}
	return app.Clients.Search(ctx, input)
}

// resolveTaskID resolves a task reference against a client's task list:
// exact id first, then unique id prefix (task ids print truncated to eight
// characters).
func resolveTaskID(ctx context.Context, app *App, clientCode, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	tasks, err := app.Query.FilterTasks(ctx, engine.OneClient(clientCode), domain.FilterAll, "")
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
