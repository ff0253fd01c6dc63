package models

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Swap request statuses. Status is free text; these are the values the
// frontend uses.
const (
	SwapStatusPending  = "pending"
	SwapStatusAccepted = "accepted"
	SwapStatusRejected = "rejected"
)
