package worker

import (
	"context"
	"sync"

	"github.com/spec-kit/citizen-services/internal/service"
)

// Workers groups the background jobs started with the HTTP server.
type Workers struct {
	Notifications *service.NotificationService
	IssueSweeper  *IssueSweeper
}

// Start registers event handlers and launches the periodic jobs. The returned
// WaitGroup is done once every job has returned after ctx is cancelled.
func Start(ctx context.Context, w Workers) *sync.WaitGroup {
	var wg sync.WaitGroup
	if w.Notifications != nil {
		w.Notifications.RegisterHandlers()
	}
	if w.IssueSweeper != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.IssueSweeper.Run(ctx)
		}()
	}
	return &wg
}
