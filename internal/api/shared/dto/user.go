package dto

import (
	"strconv"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// UserResponse represents a protocol participant
type UserResponse struct {
	ID                        string `json:"id"`
	TotalDeposited            string `json:"total_deposited"`
	TotalMinted               string `json:"total_minted"`
	TotalBurned               string `json:"total_burned"`
	FirstInteractionTimestamp string `json:"first_interaction_timestamp"`
	LastInteractionTimestamp  string `json:"last_interaction_timestamp"`
}

// UserListResponse represents a page of users
type UserListResponse struct {
	Users  []UserResponse `json:"items"`
	Offset *int           `json:"offset,omitempty"`
}

// MapUserToDTO maps a user row to its response
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		ID:                        user.ID,
		TotalDeposited:            user.TotalDeposited,
		TotalMinted:               user.TotalMinted,
		TotalBurned:               user.TotalBurned,
		FirstInteractionTimestamp: strconv.FormatInt(user.FirstInteractionTimestamp, 10),
		LastInteractionTimestamp:  strconv.FormatInt(user.LastInteractionTimestamp, 10),
	}
}
