package entities

import "time"

// Card represents a photo card.
type Card struct {
	ID        string    `json:"_id"` // UUID
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"` // user IDs, no duplicates
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether userID is in the like set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
