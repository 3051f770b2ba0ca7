package domain

type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Group) TableName() string { return "groups" }

// WordGroup is the word<->group join row. It has no lifecycle of its own:
// rows are created and deleted with membership changes.
type WordGroup struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	WordID  uint   `gorm:"not null;index" json:"word_id"`
	Word    *Word  `gorm:"constraint:OnDelete:CASCADE;foreignKey:WordID;references:ID" json:"word,omitempty"`
	GroupID uint   `gorm:"not null;index" json:"group_id"`
	Group   *Group `gorm:"constraint:OnDelete:CASCADE;foreignKey:GroupID;references:ID" json:"group,omitempty"`
}

func (WordGroup) TableName() string { return "words_groups" }
