package models

// SwapRequest is a proposal from one account to exchange skills with another.
type SwapRequest struct {
	ID            string `json:"_id" dynamodbav:"id"`
	FromUserEmail string `json:"from_user_email" dynamodbav:"from_user_email"`
	ToUserEmail   string `json:"to_user_email" dynamodbav:"to_user_email"`
	SkillOffered  string `json:"skill_offered" dynamodbav:"skill_offered"`
	SkillWanted   string `json:"skill_wanted" dynamodbav:"skill_wanted"`
	Message       string `json:"message" dynamodbav:"message"`
	Status        string `json:"status" dynamodbav:"status"` // "pending" at creation, free text after
	CreatedAt     string `json:"created_at" dynamodbav:"created_at"`
}

// SwapInput is what a caller supplies when proposing a swap.
type SwapInput struct {
	FromUserEmail string `json:"from_user_email" validate:"required"`
	ToUserEmail   string `json:"to_user_email" validate:"required"`
	SkillOffered  string `json:"skill_offered"`
	SkillWanted   string `json:"skill_wanted"`
	Message       string `json:"message"`
	Status        string `json:"status"` // Accepted for compatibility, always replaced by "pending"
}
