package models

// Food is one catalog entry with its macro breakdown per serving.
// The unique index on name backstops the service-level duplicate check.
type Food struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Fat           float64 `gorm:"not null" json:"fat"`
	Carbohydrates float64 `gorm:"not null" json:"carbohydrates"`
	Protein       float64 `gorm:"not null" json:"protein"`
	Calories      float64 `gorm:"not null" json:"calories"`
}

func (Food) TableName() string {
	return "foods"
}
