// Package notify emits fire-and-forget item lifecycle notifications.
// Delivery is best-effort: nothing is awaited, retried or persisted.
package notify

import (
	"log"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/model"
)

// Notifier receives item lifecycle events.
type Notifier interface {
	ItemCreated(item *model.Item)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) ItemCreated(item *model.Item) {
	log.Printf("[v2] New item created: %s", item.Name)
}
