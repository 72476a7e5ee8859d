package config

import (
	"fmt"
	"strings"
)

// Property API paths
const (
	UsersPath      = "/api/users"
	PropertiesPath = "/api/properties"
	FavoritesPath  = "/api/Favorites"
)

// UserPath is the path resolving a single user
func UserPath(id int) string {
	return fmt.Sprintf("%s/%d", UsersPath, id)
}

// UserFavoritePropertiesPath is the path listing the properties a user favorited
func UserFavoritePropertiesPath(userID int) string {
	return fmt.Sprintf("%s/user/%d/properties", FavoritesPath, userID)
}

// URL joins an API base and a path
func URL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
