package models

import "time"

// SocialPost - элемент стороннего социального сигнала по инциденту
type SocialPost struct {
	ID       string    `json:"id"`
	User     string    `json:"user"`
	Content  string    `json:"content"`
	PostedAt time.Time `json:"posted_at"`
}
