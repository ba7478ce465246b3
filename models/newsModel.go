package models

import "gorm.io/gorm"

const (
	NewsTypeHottest = "hottest"
	NewsTypeChoice  = "choice"
	NewsTypeLove    = "love"
	NewsTypeSecret  = "secret"
	NewsTypeDefault = "default"
)

// News articles; each non-default type is a single slot, so assigning a
// taken type demotes the previous holder to default.
type News struct {
	gorm.Model
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageUrl string `json:"imageUrl"`
	Type     string `json:"type" gorm:"size:20;default:default"`
}

func IsNewsType(t string) bool {
	switch t {
	case NewsTypeHottest, NewsTypeChoice, NewsTypeLove, NewsTypeSecret, NewsTypeDefault:
		return true
	}
	return false
}
