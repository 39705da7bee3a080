package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID            uint   `gorm:"primaryKey"`
	DiscordID     string `gorm:"uniqueIndex:user_guild_idx; size:64"`
	GuildID       string `gorm:"uniqueIndex:user_guild_idx; size:64"`
	XP            float64
	Level         int `gorm:"default:1"`
	Streak        int
	LastActive    *time.Time
	Badges        string `gorm:"size:512"`
	QuestionCount int
	Username      *string
}
