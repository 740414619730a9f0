package model

// Medicine is one scheduled medicine. TimeOfDay is informally morning,
// afternoon or evening but any value is stored as given.
type Medicine struct {
	ID              uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string  `json:"name" gorm:"size:255;not null"`
	Dose            string  `json:"dose" gorm:"size:255;not null"`
	TimeOfDay       string  `json:"time_of_day" gorm:"size:32;not null;index"`
	Notes           *string `json:"notes"`
	Active          bool    `json:"active" gorm:"not null"`
	PrescriptionURL *string `json:"prescription_url" gorm:"size:512"`
}
