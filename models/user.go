package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can hold. Everyone signs up as a member; only an
// existing admin can promote someone.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is an account on the storefront. Password holds the bcrypt hash.
// OTP is the plaintext code pending email verification; it is compared
// byte-for-byte against what the user types and cleared on success.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"`
	OTP        string             `bson:"otp,omitempty" json:"-"`
	IsVerified bool               `bson:"isVerified" json:"is_verified"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
