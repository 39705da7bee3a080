package models

import "gorm.io/gorm"

type Guild struct {
	gorm.Model
	ID               uint `gorm:"primaryKey"`
	GuildID          string
	GuildName        string
	SupportChannelID string
	XPPerMessage     float64
	PremiumEnabled   bool
}
