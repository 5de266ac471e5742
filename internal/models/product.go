package models

// ServerOwnedFields are the payload fields the intake pipeline always sets
// itself; client-supplied values under these names are discarded.
var ServerOwnedFields = []string{"createdAt", "imageFilename"}

// Product represents a product in the catalog.
// CreatedAt stays an ISO-8601 string because that is the wire format the
// document store persists and clients read back.
type Product struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2"`
	Brand         string  `json:"brand" gorm:"type:varchar(100)" validate:"required,min=2"`
	Category      string  `json:"category" gorm:"type:varchar(100)" validate:"required,min=2"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Description   string  `json:"description" gorm:"type:varchar(500)" validate:"required,min=10"`
	ImageFilename string  `json:"imageFilename,omitempty" gorm:"type:varchar(255)"`
	CreatedAt     string  `json:"createdAt" gorm:"type:varchar(40)"`
}
