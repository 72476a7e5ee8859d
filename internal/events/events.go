package events

import "time"

// PropertyLikedEvent is emitted after a favorite was created through the front end
type PropertyLikedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	UserID     int       `json:"user_id"`
	Username   string    `json:"username"`
	PropertyID int       `json:"property_id"`
	LikeCount  int       `json:"like_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePropertyLiked = "property.liked"
)

// DefaultTopic is used when no topic is configured
const DefaultTopic = "property-liked"
