package models

import (
	"time"

	"gorm.io/datatypes"
)

// VerificationQuestion is one row of the multilingual question bank.
// Text maps locale -> question text. Options holds the ordered option list
// with per-locale texts and the correct-answer marker; the marker never
// leaves the server in quiz payloads.
//
// Domain, VehicleCategory and TrainingRole are optional pool filters: NULL
// means the question applies to any value of that dimension.
type VerificationQuestion struct {
	BaseModel
	Role            UserRole       `gorm:"type:varchar(20);not null;index:idx_question_pool" json:"role"`
	Step            int            `gorm:"not null;index:idx_question_pool" json:"step"`
	Domain          *string        `gorm:"index" json:"domain"`
	VehicleCategory *string        `gorm:"index" json:"vehicleCategory"`
	TrainingRole    *string        `json:"trainingRole"`
	Text            datatypes.JSON `gorm:"not null" json:"text"`
	Options         datatypes.JSON `gorm:"not null" json:"options"`
	Difficulty      int            `gorm:"default:1" json:"difficulty"`
	Points          int            `gorm:"default:1" json:"points"`
}

// QuizScore keeps the best score per user per day. Writes go through an
// atomic upsert-max; see LeaderboardRepository.
type QuizScore struct {
	BaseModel
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_day" json:"userId"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_day" json:"date"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
