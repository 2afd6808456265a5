package models

import (
	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

// UpdateEntryRequest is a partial update; absent fields keep their stored
// values. Word count and AI insights are derived server-side and cannot be
// set here.
type UpdateEntryRequest struct {
	Title       *string               `json:"title"`
	Content     *string               `json:"content"`
	Mood        *int                  `json:"mood"`
	MoodEmoji   *string               `json:"moodEmoji"`
	Tags        *[]string             `json:"tags"`
	Attachments *[]journal.Attachment `json:"attachments"`
	IsVoiceNote *bool                 `json:"isVoiceNote"`
}
