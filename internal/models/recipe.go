package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups recipes, e.g. "Çorbalar" or "Tatlılar".
type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Recipe is owned by the user who published it. Favorite and comment counts
// are never stored on the row; they are aggregated at query time.
type Recipe struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
	Title               string         `gorm:"size:255;not null" json:"title"`
	Ingredients         string         `gorm:"type:text;not null" json:"ingredients"`
	IngredientsSections string         `gorm:"type:text" json:"ingredientsSections"`
	Instructions        string         `gorm:"type:text;not null" json:"instructions"`
	Tips                string         `gorm:"type:text" json:"tips"`
	ServingSize         string         `gorm:"size:50" json:"servingSize"`
	PreparationTime     string         `gorm:"size:50" json:"preparationTime"`
	CookingTime         string         `gorm:"size:50" json:"cookingTime"`
	Views               int            `gorm:"not null;default:0;index" json:"views"`
	ImageFilename       string         `gorm:"size:255" json:"imageFilename"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	CategoryID          *uuid.UUID     `gorm:"type:uuid;index" json:"categoryId"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RecipeImages []RecipeImage `gorm:"foreignKey:RecipeID" json:"recipeImages,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RecipeImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipeId"`
	ImagePath string    `gorm:"size:255;not null" json:"imagePath"`

	// URL is a signed download link filled in when image storage is configured
	URL string `gorm:"-" json:"url,omitempty"`
}

func (i *RecipeImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
