package postgres

import "gorm.io/gorm"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(500);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	Whatsapp     string `gorm:"type:varchar(50)"`
	CEP          string `gorm:"column:cep;type:varchar(20)"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ServiceModel é o model GORM para serviços.
// ProviderID é único: o workflow de registro cria no máximo um serviço
// por prestador.
type ServiceModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"type:varchar(500);not null"`
	Description string `gorm:"type:text"`
	PriceRange  string `gorm:"type:varchar(100)"`
	ProviderID  string `gorm:"type:uuid;not null;uniqueIndex"`
	CategoryID  string `gorm:"type:uuid;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`

	Provider UserModel          `gorm:"foreignKey:ProviderID"`
	Category CategoryModel      `gorm:"foreignKey:CategoryID"`
	Areas    []ServiceAreaModel `gorm:"foreignKey:ServiceID"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// ServiceAreaModel é o model GORM para áreas de atendimento
type ServiceAreaModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ServiceID    string `gorm:"type:uuid;not null;index"`
	City         string `gorm:"type:varchar(255)"`
	Neighborhood string `gorm:"type:varchar(255);not null;index"`
}

func (ServiceAreaModel) TableName() string {
	return "service_areas"
}

// RequestModel é o model GORM para solicitações
type RequestModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	ServiceID   string `gorm:"type:uuid;not null;index"`
	RequesterID string `gorm:"type:uuid;index"`
	Message     string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(50);not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (RequestModel) TableName() string {
	return "requests"
}

// ReviewModel é o model GORM para avaliações
type ReviewModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ServiceID string `gorm:"type:uuid;not null;index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// AutoMigrate executa a migração de todos os models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&ServiceModel{},
		&ServiceAreaModel{},
		&RequestModel{},
		&ReviewModel{},
	)
}
