package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"presale/adminhub/internal/analytics"
)

type mongoRewardSource struct {
	codes  *mongo.Collection
	claims *mongo.Collection
}

func NewMongoRewardSource(db *mongo.Database, codesCollection, claimsCollection string) RewardDocumentSource {
	return &mongoRewardSource{
		codes:  db.Collection(codesCollection),
		claims: db.Collection(claimsCollection),
	}
}

func (s *mongoRewardSource) FetchCodes(ctx context.Context) ([]analytics.Document, error) {
	return fetchAll(ctx, s.codes)
}

func (s *mongoRewardSource) FetchClaims(ctx context.Context) ([]analytics.Document, error) {
	return fetchAll(ctx, s.claims)
}

func (s *mongoRewardSource) InsertCode(ctx context.Context, fields map[string]any) error {
	_, err := s.codes.InsertOne(ctx, bson.M(fields))
	if err != nil {
		return fmt.Errorf("insert code: %w", err)
	}
	return nil
}

// SetCodeStatus writes the stored status field on every record carrying the
// code, under any of the field names the store's writers use.
func (s *mongoRewardSource) SetCodeStatus(ctx context.Context, code string, status string) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"secretCode": code},
		bson.M{"code": code},
		bson.M{"activeCode": code},
	}}
	_, err := s.codes.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("set code status: %w", err)
	}
	return nil
}

func fetchAll(ctx context.Context, coll *mongo.Collection) ([]analytics.Document, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []analytics.Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			// A record the driver cannot decode is dropped, not fatal.
			continue
		}
		doc := analytics.Document{Fields: map[string]any(raw)}
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			doc.ID = oid.Hex()
		} else if s, ok := raw["_id"].(string); ok {
			doc.ID = s
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", coll.Name(), err)
	}
	return docs, nil
}
