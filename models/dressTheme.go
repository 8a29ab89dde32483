// dressTheme.go - Defines the DressTheme model for the database

package models // Declares the package name

// DressTheme is one uploaded dress image, served at random by /dressTheme.
type DressTheme struct {
	ID         string `gorm:"primaryKey" bson:"_id,omitempty" json:"_id,omitempty"`            // Generated id
	ImageName  string `gorm:"column:image_name;not null" bson:"imageName" json:"imageName"`    // Original file name
	DressImage string `gorm:"column:dress_image;not null" bson:"dressImage" json:"dressImage"` // Public URL of the image
}

func (DressTheme) TableName() string { return DressThemeCollection }
