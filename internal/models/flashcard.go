package models

// Card is a single question/answer pair. Answer may carry **emphasis** markup.
type Card struct {
	ID       int64  `json:"ID" validate:"gt=0"`
	Question string `json:"Question" validate:"required"`
	Answer   string `json:"Answer" validate:"required"`
}
