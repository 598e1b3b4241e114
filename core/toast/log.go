package toast

import (
	"sync"

	"go.uber.org/zap"
)

// LogSubscriber returns a subscriber that writes every newly pushed toast to l.
func LogSubscriber(l *zap.Logger) func([]Item) {
	var (
		mu     sync.Mutex
		lastID int
	)
	return func(items []Item) {
		mu.Lock()
		defer mu.Unlock()

		// items are newest first, so walk backwards to log in push order.
		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			if it.ID <= lastID {
				continue
			}
			lastID = it.ID

			switch it.Type {
			case TypeError:
				l.Error(it.Message)
			case TypeWarning:
				l.Warn(it.Message)
			default:
				l.Info(it.Message, zap.String("type", string(it.Type)))
			}
		}
	}
}
