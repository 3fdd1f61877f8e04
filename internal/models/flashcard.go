package models

import "time"

// Flashcard is a stored flashcard row.
type Flashcard struct {
	ID          int64     `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Explanation string    `json:"explanation"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Progress    Progress  `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
}

// FlashcardInput is the client payload for create and full update.
// Store-assigned fields (id, created_at) are not accepted from clients.
type FlashcardInput struct {
	Question    string    `json:"question" validate:"required,min=5,max=500"`
	Answer      string    `json:"answer" validate:"required,min=1,max=1000"`
	Explanation string    `json:"explanation" validate:"max=2000"`
	Code        string    `json:"code" validate:"max=5000"`
	Category    string    `json:"category" validate:"required,min=3,max=50"`
	Progress    *Progress `json:"progress" validate:"omitempty,min=0,max=5"`
}

// FlashcardUpdate holds the columns a full update writes. A nil Progress
// leaves the stored progress untouched.
type FlashcardUpdate struct {
	Question    string
	Answer      string
	Explanation string
	Code        string
	Category    string
	Progress    *Progress
}

// ProgressInput is the body of a progress-only update; other fields are ignored.
type ProgressInput struct {
	Progress *Progress `json:"progress" validate:"required,min=0,max=5"`
}

// ProgressEntry is the (question, progress) projection of a flashcard.
type ProgressEntry struct {
	Question string   `json:"question"`
	Progress Progress `json:"progress"`
}

// ConnectionStatus reports row store reachability.
type ConnectionStatus struct {
	Status    string `json:"connection_status"`
	Driver    string `json:"driver"`
	DataCount int    `json:"data_count"`
}
