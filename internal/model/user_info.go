package model

import "time"

// GrowthGoals partitions a user's stated goals by horizon.
type GrowthGoals struct {
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// UserInfo is a row in the `user_info` table: profile details kept apart
// from the credential record. One row per user.
type UserInfo struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Bio         string      `json:"bio,omitempty"`
	Timezone    string      `json:"timezone"`
	GrowthGoals GrowthGoals `json:"growthGoals"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
