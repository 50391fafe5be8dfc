package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile adalah konten halaman publik (about & contact). Satu baris saja.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Tagline   string    `gorm:"type:varchar(255)"`
	About     string    `gorm:"type:text"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(30)"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slide adalah satu gambar carousel di halaman hero.
type Slide struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255)"`
	Caption   string    `gorm:"type:text"`
	ImageData string    `gorm:"type:text"` // base64
	SortOrder int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
