package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultShopName is used when the singleton config document does not
// exist yet.
const DefaultShopName = "Any Outlet"

// SiteConfig is the shop-wide settings singleton shown in the page
// header and on the contact page. At most one document exists; it is
// created with defaults on startup and replaced by admin updates.
type SiteConfig struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShopName string             `bson:"shopName" json:"shop_name"`
	Address  string             `bson:"address" json:"address"`
	Phone    string             `bson:"phone" json:"phone"`
	Email    string             `bson:"email" json:"email"`
	LineID   string             `bson:"lineId" json:"line_id"`
}
