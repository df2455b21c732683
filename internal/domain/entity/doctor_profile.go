package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data shown in the directory
type DoctorProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialty  string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Experience string    `gorm:"type:varchar(100)" json:"experience,omitempty"`
	Biography  string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedule *DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedule,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
