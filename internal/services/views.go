package services

import "time"

// View models returned by the assemblers. Shapes are part of the API
// contract, so json tags live here rather than on the domain types.

type WordStats struct {
	CorrectCount int64 `json:"correct_count"`
	WrongCount   int64 `json:"wrong_count"`
}

type WordInList struct {
	ID           uint   `json:"id"`
	Japanese     string `json:"japanese"`
	Romaji       string `json:"romaji"`
	English      string `json:"english"`
	CorrectCount int64  `json:"correct_count"`
	WrongCount   int64  `json:"wrong_count"`
}

type GroupInWord struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type WordDetail struct {
	ID       uint          `json:"id"`
	Japanese string        `json:"japanese"`
	Romaji   string        `json:"romaji"`
	English  string        `json:"english"`
	Stats    WordStats     `json:"stats"`
	Groups   []GroupInWord `json:"groups"`
}

type GroupStats struct {
	TotalWordCount int64 `json:"total_word_count"`
}

type GroupInList struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	WordCount int64  `json:"word_count"`
}

type GroupDetail struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Stats GroupStats `json:"stats"`
}

type StudySessionView struct {
	ID               uint      `json:"id"`
	ActivityName     string    `json:"activity_name"`
	GroupName        string    `json:"group_name"`
	GroupID          uint      `json:"group_id"`
	StudyActivityID  uint      `json:"study_activity_id"`
	CreatedAt        time.Time `json:"created_at"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ReviewItemsCount int64     `json:"review_items_count"`
}

type StudyActivityDetail struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}

type ReviewResult struct {
	WordID         uint      `json:"word_id"`
	StudySessionID uint      `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

type LaunchResult struct {
	SessionID       uint `json:"id"`
	GroupID         uint `json:"group_id"`
	StudyActivityID uint `json:"study_activity_id"`
}

type StudyProgress struct {
	TotalWordsStudied   int64 `json:"total_words_studied"`
	TotalAvailableWords int64 `json:"total_available_words"`
}

type QuickStats struct {
	SuccessRate        float64 `json:"success_rate"`
	TotalStudySessions int64   `json:"total_study_sessions"`
	TotalActiveGroups  int64   `json:"total_active_groups"`
	StudyStreakDays    int     `json:"study_streak_days"`
}
