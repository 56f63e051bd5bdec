package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spacial-to-fxa/any-outlet/models"
)

// SiteConfigs wraps the singleton site-configuration collection.
type SiteConfigs struct {
	col *mongo.Collection
}

func NewSiteConfigs(db *mongo.Database) *SiteConfigs {
	return &SiteConfigs{col: db.Collection("siteconfigs")}
}

// Ensure creates the singleton with the default shop name when it does
// not exist yet, and returns whichever document ends up stored. Runs once
// at startup; safe to call repeatedly.
func (s *SiteConfigs) Ensure(ctx context.Context) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$setOnInsert": bson.M{"shopName": models.DefaultShopName}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&cfg)
	return cfg, err
}

// Get returns the singleton, falling back to in-memory defaults if the
// document vanished between Ensure and now.
func (s *SiteConfigs) Get(ctx context.Context) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := s.col.FindOne(ctx, bson.M{}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return models.SiteConfig{ShopName: models.DefaultShopName}, nil
	}
	return cfg, err
}

// Upsert replaces the singleton's fields with the submitted values.
func (s *SiteConfigs) Upsert(ctx context.Context, cfg models.SiteConfig) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{},
		bson.M{"$set": bson.M{
			"shopName": cfg.ShopName,
			"address":  cfg.Address,
			"phone":    cfg.Phone,
			"email":    cfg.Email,
			"lineId":   cfg.LineID,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
