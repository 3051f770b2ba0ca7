package domain

import "time"

// StudyActivity is a template for study sessions (flashcards, quiz, ...).
type StudyActivity struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	ThumbnailURL string `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Description  string `json:"description"`
}

func (StudyActivity) TableName() string { return "study_activities" }

// StudySession is created when an activity is launched against a group and
// is immutable afterwards.
type StudySession struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	GroupID         uint           `gorm:"not null;index" json:"group_id"`
	Group           *Group         `gorm:"constraint:OnDelete:CASCADE;foreignKey:GroupID;references:ID" json:"group,omitempty"`
	StudyActivityID uint           `gorm:"not null;index" json:"study_activity_id"`
	StudyActivity   *StudyActivity `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudyActivityID;references:ID" json:"study_activity,omitempty"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
}

func (StudySession) TableName() string { return "study_sessions" }

// WordReviewItem is an append-only fact: one row per word attempt within a
// session.
type WordReviewItem struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	WordID         uint          `gorm:"not null;index" json:"word_id"`
	Word           *Word         `gorm:"constraint:OnDelete:CASCADE;foreignKey:WordID;references:ID" json:"word,omitempty"`
	StudySessionID uint          `gorm:"not null;index" json:"study_session_id"`
	StudySession   *StudySession `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudySessionID;references:ID" json:"study_session,omitempty"`
	Correct        bool          `gorm:"not null" json:"correct"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
}

func (WordReviewItem) TableName() string { return "word_review_items" }
