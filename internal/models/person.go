package models

import "time"

// Person concentra os campos comuns de Client e Staff. É composição
// estrutural (embedded), não herança: cada entidade persiste na sua
// própria tabela.
type Person struct {
	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Notes       string `gorm:"type:text" json:"notes"`
	Preferences string `gorm:"type:text" json:"preferences"`
	Services    string `gorm:"type:text" json:"services"`

	AvailableDays []string `gorm:"serializer:json;type:text" json:"available_days"`

	Active bool `gorm:"default:true" json:"active"`
}

type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Person `gorm:"embedded"`

	Company    string `gorm:"size:120" json:"company"`
	IsWhatsapp bool   `gorm:"default:false" json:"is_whatsapp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Staff struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Person `gorm:"embedded"`

	Role      string `gorm:"size:80;not null" json:"role"`
	Specialty string `gorm:"size:120" json:"specialty"`

	// permite citas simultâneas para o mesmo profissional
	AllowMultiple bool `gorm:"default:true" json:"allow_multiple"`
	IsWhatsapp    bool `gorm:"default:false" json:"is_whatsapp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
