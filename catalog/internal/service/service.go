package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
)

// Auditor appends an audit entry inside the running Update.
type Auditor interface {
	Record(tx repository.Tx, eventType model.EventType, patronID, bookID *int, description string)
}

type Notifier interface {
	Notify(ctx context.Context, event model.CirculationEvent)
}
