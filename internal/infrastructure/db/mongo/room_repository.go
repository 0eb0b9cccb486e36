package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

const (
	registryCollection = "registry"
	registryKey        = "rooms"
)

// RoomRepository stores the whole room registry as a single document keyed
// by a fixed id. Every write replaces the serialized collection atomically;
// there is no per-record persistence and no incremental diffing. Insertion
// order is the stored array order.
type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(registryCollection)}
}

type registryDoc struct {
	ID    string        `bson:"_id"`
	Rooms []domain.Room `bson:"rooms"`
}

// List returns every room in insertion order. A missing registry document
// reads as an empty collection.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc registryDoc
	err := r.col.FindOne(ctx, bson.M{"_id": registryKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []domain.Room{}, nil
		}
		return nil, fmt.Errorf("load registry: %w", err)
	}
	if doc.Rooms == nil {
		return []domain.Room{}, nil
	}
	return doc.Rooms, nil
}

// ReplaceAll overwrites the stored collection with rooms in a single
// document replacement.
func (r *RoomRepository) ReplaceAll(ctx context.Context, rooms []domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := registryDoc{ID: registryKey, Rooms: rooms}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": registryKey}, doc, opts); err != nil {
		return fmt.Errorf("replace registry: %w", err)
	}
	return nil
}
