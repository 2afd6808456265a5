package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

// DefaultWritingPrompt is served whenever prompt generation fails.
const DefaultWritingPrompt = "What are three things you're grateful for today, and why do they matter to you?"

// readingWordsPerMinute is the average reading speed used for the reading
// time estimate.
const readingWordsPerMinute = 200

// SentimentAnalysis is the structured result of analyzing one text.
type SentimentAnalysis struct {
	Mood       int      `json:"mood"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions"`
	Topics     []string `json:"topics"`
}

// Insights is the full per-entry insight payload attached to entries.
type Insights struct {
	Sentiment   SentimentAnalysis `json:"sentiment"`
	WordCount   int               `json:"wordCount"`
	ReadingTime int               `json:"readingTime"`
	KeyThemes   []string          `json:"keyThemes"`
	Suggestions []string          `json:"suggestions"`
}

// WeeklyInsights summarizes a week of entries.
type WeeklyInsights struct {
	MoodTrend       string   `json:"moodTrend"`
	KeyPatterns     []string `json:"keyPatterns"`
	Recommendations []string `json:"recommendations"`
	WellnessScore   int      `json:"wellnessScore"`
}

const sentimentSystemPrompt = `You are an expert emotional intelligence analyst. Analyze the sentiment and emotional content of diary entries.
Provide a mood rating from 1-5 (1=very negative, 5=very positive), confidence score 0-1,
list of emotions detected, and key topics/themes.
Respond with JSON in this exact format: {"mood": number, "confidence": number, "emotions": ["emotion1"], "topics": ["topic1"]}`

const insightsSystemPrompt = `You are a personal wellness coach and journal analyst. Analyze diary entries to provide helpful insights and suggestions.
Focus on patterns, emotional well-being, and constructive recommendations.
Respond with JSON in this format: {"keyThemes": ["theme1"], "suggestions": ["suggestion1"]}`

const weeklySystemPrompt = `You are a mental health and wellness analyst. Analyze a week's worth of diary entries to identify patterns and provide insights.
Provide a wellness score from 1-100, mood trend description, key patterns observed, and personalized recommendations.
Respond with JSON in this format: {"moodTrend": "description", "keyPatterns": ["pattern1"], "recommendations": ["rec1"], "wellnessScore": number}`

const promptSystemPrompt = `You are a creative writing coach specializing in personal reflection and journaling. Generate thoughtful, engaging writing prompts that encourage self-reflection and personal growth.`

// AnalyzeSentiment rates the mood of one text on the 1-5 scale. The result
// is always clamped into range regardless of what the model returns.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*SentimentAnalysis, error) {
	reply, err := c.chat(ctx, sentimentSystemPrompt, fmt.Sprintf("Analyze this diary entry: %q", text), true)
	if err != nil {
		return nil, err
	}

	var result struct {
		Mood       float64  `json:"mood"`
		Confidence float64  `json:"confidence"`
		Emotions   []string `json:"emotions"`
		Topics     []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(reply), &result); err != nil {
		return nil, fmt.Errorf("%w: malformed sentiment payload: %v", ErrServiceFailure, err)
	}

	return &SentimentAnalysis{
		Mood:       clampInt(int(math.Round(result.Mood)), 1, 5),
		Confidence: clampFloat(result.Confidence, 0, 1),
		Emotions:   orEmpty(result.Emotions),
		Topics:     orEmpty(result.Topics),
	}, nil
}

// GenerateInsights produces the full insight payload for one entry:
// sentiment, derived word count and reading time, key themes, suggestions.
func (c *Client) GenerateInsights(ctx context.Context, text string) (*Insights, error) {
	sentiment, err := c.AnalyzeSentiment(ctx, text)
	if err != nil {
		return nil, err
	}

	reply, err := c.chat(ctx, insightsSystemPrompt, fmt.Sprintf("Analyze this diary entry and provide wellness insights: %q", text), true)
	if err != nil {
		return nil, err
	}

	var result struct {
		KeyThemes   []string `json:"keyThemes"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(reply), &result); err != nil {
		return nil, fmt.Errorf("%w: malformed insights payload: %v", ErrServiceFailure, err)
	}

	wordCount := journal.CountWords(text)
	return &Insights{
		Sentiment:   *sentiment,
		WordCount:   wordCount,
		ReadingTime: int(math.Ceil(float64(wordCount) / readingWordsPerMinute)),
		KeyThemes:   orEmpty(result.KeyThemes),
		Suggestions: orEmpty(result.Suggestions),
	}, nil
}

// GenerateWeeklyInsights summarizes the given entry texts. The wellness
// score is clamped to 1-100; a missing score defaults to 50.
func (c *Client) GenerateWeeklyInsights(ctx context.Context, texts []string) (*WeeklyInsights, error) {
	combined := ""
	for i, text := range texts {
		if i > 0 {
			combined += "\n\n"
		}
		combined += text
	}

	reply, err := c.chat(ctx, weeklySystemPrompt, fmt.Sprintf("Analyze these diary entries from the past week: %q", combined), true)
	if err != nil {
		return nil, err
	}

	var result struct {
		MoodTrend       string   `json:"moodTrend"`
		KeyPatterns     []string `json:"keyPatterns"`
		Recommendations []string `json:"recommendations"`
		WellnessScore   float64  `json:"wellnessScore"`
	}
	if err := json.Unmarshal([]byte(reply), &result); err != nil {
		return nil, fmt.Errorf("%w: malformed weekly payload: %v", ErrServiceFailure, err)
	}

	if result.MoodTrend == "" {
		result.MoodTrend = "No clear trend identified"
	}
	score := int(math.Round(result.WellnessScore))
	if score == 0 {
		score = 50
	}

	return &WeeklyInsights{
		MoodTrend:       result.MoodTrend,
		KeyPatterns:     orEmpty(result.KeyPatterns),
		Recommendations: orEmpty(result.Recommendations),
		WellnessScore:   clampInt(score, 1, 100),
	}, nil
}

// GenerateWritingPrompt asks for a fresh journaling prompt. It never fails:
// any error yields DefaultWritingPrompt.
func (c *Client) GenerateWritingPrompt(ctx context.Context) string {
	reply, err := c.chat(ctx, promptSystemPrompt,
		"Generate a unique, inspiring writing prompt for a diary entry that encourages personal reflection and emotional exploration.", false)
	if err != nil || reply == "" {
		return DefaultWritingPrompt
	}
	return reply
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
