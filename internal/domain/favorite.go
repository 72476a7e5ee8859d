package domain

import (
	"context"
)

// PropertySummary is the partial property the API embeds in a favorite
type PropertySummary struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	ImageURL string  `json:"imageUrl"`
}

// Favorite is a like relationship between a user and a property
type Favorite struct {
	ID         *int             `json:"id,omitempty"`
	UserID     int              `json:"userId"`
	PropertyID int              `json:"propertyId"`
	CreatedAt  *Timestamp       `json:"createdAt,omitempty"`
	Property   *PropertySummary `json:"property,omitempty"`
}

// FavoriteInput is the body of a create-favorite call
type FavoriteInput struct {
	UserID     int `json:"userId"`
	PropertyID int `json:"propertyId"`
}

// FavoriteRepository reads and creates favorites
type FavoriteRepository interface {
	ListFavorites(ctx context.Context) (Favorites, error)
	ListUserFavoriteProperties(ctx context.Context, userID int) (Favorites, error)
	CreateFavorite(ctx context.Context, in FavoriteInput) (*Favorite, error)
}

// Favorites is a fetched favorites collection
type Favorites []Favorite

// CountFor returns the like count of a property
func (f Favorites) CountFor(propertyID int) int {
	n := 0
	for _, fav := range f {
		if fav.PropertyID == propertyID {
			n++
		}
	}
	return n
}

// LikedBy reports whether userID has a favorite on propertyID
func (f Favorites) LikedBy(userID, propertyID int) bool {
	for _, fav := range f {
		if fav.UserID == userID && fav.PropertyID == propertyID {
			return true
		}
	}
	return false
}

// LikerIDs returns the user ids that liked propertyID, in collection order
func (f Favorites) LikerIDs(propertyID int) []int {
	var ids []int
	for _, fav := range f {
		if fav.PropertyID == propertyID {
			ids = append(ids, fav.UserID)
		}
	}
	return ids
}

// PropertyIDs returns the set of property ids present in the collection.
// Rows from the per-user endpoint may carry only the embedded property.
func (f Favorites) PropertyIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(f))
	for _, fav := range f {
		id := fav.PropertyID
		if id == 0 && fav.Property != nil {
			id = fav.Property.ID
		}
		if id != 0 {
			ids[id] = struct{}{}
		}
	}
	return ids
}
