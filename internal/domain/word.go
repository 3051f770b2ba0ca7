package domain

// Word is an immutable vocabulary entry. Aggregate correct/wrong counts are
// never stored on the row; they are recomputed from word_review_items on read.
type Word struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Japanese string `gorm:"not null" json:"japanese"`
	Romaji   string `gorm:"not null" json:"romaji"`
	English  string `gorm:"not null" json:"english"`
}

func (Word) TableName() string { return "words" }
