package db_models

type Destination struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Slug        string `gorm:"uniqueIndex"`
	Country     string
	Description string

	Packages []*TravelPackage `gorm:"foreignKey:DestinationID"`
}
