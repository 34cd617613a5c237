package skills

import "time"

type Skill struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Proficiency int       `bson:"proficiency" json:"proficiency"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Proficiency *int   `json:"proficiency" validate:"required,gte=0,lte=100"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
