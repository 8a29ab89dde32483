// user.go - Defines the User model for the database

package models // Declares the package name

// Collection names in the document store (also used as SQLite table names)
const (
	UsersCollection      = "users"
	HomePagesCollection  = "homePages"
	DressThemeCollection = "dressCollectionTheme"
)

type User struct { // User struct represents a user in the database
	ID       string `gorm:"primaryKey" bson:"_id,omitempty" json:"_id,omitempty"`        // Generated id (ObjectID hex or UUID)
	UserName string `gorm:"column:user_name" bson:"userName" json:"userName"`            // Display name
	Email    string `gorm:"column:email;index;not null" bson:"email" json:"email"`       // Lookup key, uniqueness checked before insert
	Password string `gorm:"column:password;not null" bson:"password" json:"-"`           // Hashed password (never sent to clients)
	IsAdmin  bool   `gorm:"column:is_admin;default:false" bson:"isAdmin" json:"isAdmin"` // Admin flag
}

// TableName keeps the SQLite table aligned with the Mongo collection name.
func (User) TableName() string { return UsersCollection }
