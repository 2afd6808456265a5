package models

import (
	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

type CreateEntryRequest struct {
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Mood        *int                 `json:"mood"`
	MoodEmoji   string               `json:"moodEmoji"`
	Tags        []string             `json:"tags"`
	Attachments []journal.Attachment `json:"attachments"`
	IsVoiceNote bool                 `json:"isVoiceNote"`
}
