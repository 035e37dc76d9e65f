package model

// DailySummary aggregates today's activity counts with generated insights.
type DailySummary struct {
	Date           string   `json:"date"`
	TotalChats     int      `json:"totalChats"`
	GoalsCompleted int      `json:"goalsCompleted"`
	NotesCreated   int      `json:"notesCreated"`
	Insights       []string `json:"insights"`
}
