package models

import (
	"fmt"
	"slices"
	"time"
)

// Weathers lists the accepted values of Item.Weather.
var Weathers = []string{"cold", "warm", "hot"}

// Item is a clothing item as served by GET /items.
type Item struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Weather   string    `json:"weather"`
	ImageURL  string    `json:"imageUrl"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether userID is in the item's likes.
func (i *Item) LikedBy(userID string) bool {
	return slices.Contains(i.Likes, userID)
}

// String renders the item as one listing line.
func (i *Item) String() string {
	return fmt.Sprintf("%s  %-30s %-5s likes:%d  %s", i.ID, i.Name, i.Weather, len(i.Likes), i.ImageURL)
}

// NewItem is the body of POST /items.
type NewItem struct {
	Name     string `json:"name"`
	Weather  string `json:"weather"`
	ImageURL string `json:"imageUrl"`
}

// ImageUpload is the answer of POST /items/images.
type ImageUpload struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
	Key       string `json:"key"`
}
