package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	col, err := mdb.GetCollection(ctx, RoomsDbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, room); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	return room, nil
}

func (mdb *MongodbRepo) GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	col, err := mdb.GetCollection(ctx, RoomsDbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var room Room
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	return &room, nil
}

func (mdb *MongodbRepo) ListRooms(ctx context.Context, offset, limit int) ([]*Room, int, error) {
	col, err := mdb.GetCollection(ctx, RoomsDbName, RoomsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer cursor.Close(ctx)

	var rooms []*Room
	for cursor.Next(ctx) {
		var room Room
		if err := cursor.Decode(&room); err != nil {
			return nil, 0, fmt.Errorf("error decoding room: %v", err)
		}
		rooms = append(rooms, &room)
	}

	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	return rooms, int(total), nil
}
