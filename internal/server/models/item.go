package models

import "time"

// Weather is the temperature band an item is suitable for.
type Weather string

const (
	WeatherCold Weather = "cold"
	WeatherWarm Weather = "warm"
	WeatherHot  Weather = "hot"
)

// Valid reports whether w is one of the known bands.
func (w Weather) Valid() bool {
	switch w {
	case WeatherCold, WeatherWarm, WeatherHot:
		return true
	}
	return false
}

// ClothingItem is a garment recommendation. Likes is a set of user ids and
// is always encoded as an array.
type ClothingItem struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Weather   Weather   `json:"weather"`
	ImageURL  string    `json:"imageUrl"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize replaces a nil Likes with an empty slice.
func (c *ClothingItem) Normalize() *ClothingItem {
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return c
}
