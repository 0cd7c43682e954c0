package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the account domain.
// Accounts are provisioned administratively (see cmd/seed); the API only
// reads them, so there are no mutation paths on this type.
//
// Password holds the stored credential verbatim. Whether that is a plain
// secret or a bcrypt hash depends on the configured credential scheme;
// comparison always goes through helpers.CredentialMatcher.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Name     string             `bson:"name" json:"name"`
}

// DisplayName returns the user's name, falling back to "User" when the
// document has no name field.
func (u *User) DisplayName() string {
	if u.Name == "" {
		return "User"
	}
	return u.Name
}
