package models

// EmailMessage is the rendered payload handed to the mail API.
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// ReminderStatistics represents reminder processing statistics.
type ReminderStatistics struct {
	ScheduledCount int `json:"scheduled_count"`
	DueNowCount    int `json:"due_now_count"`
	SentCount      int `json:"sent_count"`
}
