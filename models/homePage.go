// homePage.go - Defines the home page documents

package models // Declares the package name

// HomePage is an opaque document returned to clients as stored.
type HomePage map[string]interface{}

// HomePageRecord is the SQLite representation of a HomePage: the document as JSON text.
type HomePageRecord struct {
	ID       string `gorm:"primaryKey"`
	Document string `gorm:"type:text;not null"`
}

func (HomePageRecord) TableName() string { return HomePagesCollection }
