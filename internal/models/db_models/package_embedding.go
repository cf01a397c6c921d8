package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// PackageEmbedding is one row of the similarity index: the package vector plus
// a denormalized metadata snapshot so search results can be rendered without a
// join back to the catalog. Overview is truncated to 500 characters at write
// time to bound row size.
type PackageEmbedding struct {
	PackageID       string `gorm:"primaryKey;column:package_id"`
	DestinationName string
	DestinationID   string
	Duration        string
	PriceRange      string
	StarCategory    string
	TravelType      string
	PrimaryImage    string
	Overview        string
	Embedding       pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
}
