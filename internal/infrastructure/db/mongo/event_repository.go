package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

const collectionEvents = "account_events"

// mongoEvent is one line of the account audit trail. Failed logins have no account id.
type mongoEvent struct {
	Type        string    `bson:"type"`
	Role        string    `bson:"role"`
	AccountID   string    `bson:"account_id,omitempty"`
	Identifier  string    `bson:"identifier"`
	Timestamp   time.Time `bson:"timestamp"`
	ProcessedAt time.Time `bson:"processed_at"`
}

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{coll: db.Collection(collectionEvents)}
}

func (r *EventRepository) InsertEvent(ctx context.Context, ev *domain.AccountEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEvent{
		Type:        string(ev.Type),
		Role:        string(ev.Role),
		AccountID:   ev.AccountID,
		Identifier:  ev.Identifier,
		Timestamp:   ev.Timestamp.UTC(),
		ProcessedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s event: %w", ev.Type, err)
	}
	return nil
}
