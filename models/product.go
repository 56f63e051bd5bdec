package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog item. RealPrice is the struck-through original
// price, SalePrice is what the buyer actually pays (and what the payment
// QR is generated for). Image is the bare filename of the uploaded photo
// inside the upload directory, empty when none was supplied.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	RealPrice   float64            `bson:"realPrice" json:"real_price"`
	SalePrice   float64            `bson:"salePrice" json:"sale_price"`
	Stock       int                `bson:"stock" json:"stock"`
	Image       string             `bson:"image" json:"image"`
}
