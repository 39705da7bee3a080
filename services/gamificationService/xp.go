package gamificationService

import (
	"fmt"
	"launchpadBot/models"
	"launchpadBot/services/common"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// UserXP is the in-memory record per Discord user per guild. The map is
// authoritative while the process runs; a cron flush mirrors it to the
// users table so the leaderboard survives restarts.
type UserXP struct {
	DiscordID     string
	GuildID       string
	Username      string
	XP            float64
	Level         int
	Streak        int
	LastActive    time.Time
	Badges        []string
	QuestionCount int
}

type LevelInfo struct {
	Level      int
	XPForNext  float64
	XPProgress float64
}

const dailyStreakBonus = 5.0

var (
	mu     sync.Mutex
	userXP = make(map[string]*UserXP)
)

func key(discordID, guildID string) string {
	return discordID + ":" + guildID
}

// CalculateLevel maps total XP to a level on a square-root curve:
// level 1 at 0 XP, level 5 at 500 XP, slowing down from there.
func CalculateLevel(xp float64) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Sqrt(xp)/5) + 1
	nextThreshold := math.Pow(float64(level)*5, 2)
	currentThreshold := math.Pow(float64(level-1)*5, 2)
	return LevelInfo{
		Level:      level,
		XPForNext:  nextThreshold,
		XPProgress: xp - currentThreshold,
	}
}

// AwardXP credits activity XP and updates streak, level, and badges.
// Returns the updated record and any badges earned by this award.
func AwardXP(discordID, guildID, username string, amount float64, isQuestion bool) (*UserXP, []string) {
	mu.Lock()
	defer mu.Unlock()

	u, ok := userXP[key(discordID, guildID)]
	if !ok {
		u = &UserXP{DiscordID: discordID, GuildID: guildID, Level: 1}
		userXP[key(discordID, guildID)] = u
	}
	if username != "" {
		u.Username = username
	}

	now := time.Now()
	streak, extended := advanceStreak(u.LastActive, now, u.Streak)
	u.Streak = streak
	if extended {
		amount += dailyStreakBonus
	}
	u.LastActive = now

	u.XP += amount
	u.Level = CalculateLevel(u.XP).Level
	if isQuestion {
		u.QuestionCount++
	}

	earned := checkBadges(u)

	copied := *u
	copied.Badges = append([]string(nil), u.Badges...)
	return &copied, earned
}

// advanceStreak applies one activity event to a streak. A second event
// on the same day is a no-op, the next day extends (extended=true pays
// the daily bonus), and any gap resets to 1.
func advanceStreak(lastActive, now time.Time, streak int) (int, bool) {
	if lastActive.IsZero() {
		return 1, false
	}
	today := now.Truncate(24 * time.Hour)
	lastDay := lastActive.Truncate(24 * time.Hour)
	switch {
	case today.Equal(lastDay):
		return streak, false
	case today.Sub(lastDay) == 24*time.Hour:
		return streak + 1, true
	default:
		return 1, false
	}
}

// checkBadges appends any newly earned badges. A badge is only ever
// granted once per user; callers hold the mutex.
func checkBadges(u *UserXP) []string {
	var earned []string
	grant := func(badge string) {
		if !common.Contains(u.Badges, badge) {
			u.Badges = append(u.Badges, badge)
			earned = append(earned, badge)
		}
	}

	if u.QuestionCount >= 1 {
		grant("first-question")
	}
	if u.QuestionCount >= 10 {
		grant("curious")
	}
	if u.QuestionCount >= 50 {
		grant("scholar")
	}
	if u.Streak >= 7 {
		grant("week-streak")
	}
	if u.Level >= 5 {
		grant("regular")
	}
	if u.Level >= 10 {
		grant("veteran")
	}
	return earned
}

// Get returns a copy of the record, or nil if the user has no XP yet.
func Get(discordID, guildID string) *UserXP {
	mu.Lock()
	defer mu.Unlock()
	u, ok := userXP[key(discordID, guildID)]
	if !ok {
		return nil
	}
	copied := *u
	copied.Badges = append([]string(nil), u.Badges...)
	return &copied
}

// Top returns the highest-XP users for a guild, best first.
func Top(guildID string, n int) []UserXP {
	mu.Lock()
	defer mu.Unlock()

	var users []UserXP
	for _, u := range userXP {
		if u.GuildID == guildID {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].XP > users[j].XP })
	if len(users) > n {
		users = users[:n]
	}
	return users
}

// Warm seeds the map from persisted rows so leaderboards carry across
// restarts. Existing in-memory entries win.
func Warm(db *gorm.DB) error {
	var rows []models.User
	if err := db.Find(&rows).Error; err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	for _, row := range rows {
		k := key(row.DiscordID, row.GuildID)
		if _, ok := userXP[k]; ok {
			continue
		}
		u := &UserXP{
			DiscordID:     row.DiscordID,
			GuildID:       row.GuildID,
			XP:            row.XP,
			Level:         row.Level,
			Streak:        row.Streak,
			QuestionCount: row.QuestionCount,
		}
		if row.Username != nil {
			u.Username = *row.Username
		}
		if row.LastActive != nil {
			u.LastActive = *row.LastActive
		}
		if row.Badges != "" {
			u.Badges = strings.Split(row.Badges, ",")
		}
		userXP[k] = u
	}
	return nil
}

// Flush upserts every in-memory record into the users table.
func Flush(db *gorm.DB) error {
	mu.Lock()
	snapshot := make([]UserXP, 0, len(userXP))
	for _, u := range userXP {
		copied := *u
		copied.Badges = append([]string(nil), u.Badges...)
		snapshot = append(snapshot, copied)
	}
	mu.Unlock()

	for _, u := range snapshot {
		var row models.User
		result := db.FirstOrCreate(&row, models.User{DiscordID: u.DiscordID, GuildID: u.GuildID})
		if result.Error != nil {
			return fmt.Errorf("error upserting user %s: %v", u.DiscordID, result.Error)
		}
		row.XP = u.XP
		row.Level = u.Level
		row.Streak = u.Streak
		row.QuestionCount = u.QuestionCount
		row.Badges = strings.Join(u.Badges, ",")
		if u.Username != "" {
			row.Username = &u.Username
		}
		if !u.LastActive.IsZero() {
			lastActive := u.LastActive
			row.LastActive = &lastActive
		}
		if err := db.Save(&row).Error; err != nil {
			return fmt.Errorf("error saving user %s: %v", u.DiscordID, err)
		}
	}
	return nil
}

// RolloverStreaks zeroes streaks for users who missed a full day. Runs
// from the daily cron.
func RolloverStreaks() int {
	mu.Lock()
	defer mu.Unlock()

	cutoff := time.Now().Truncate(24 * time.Hour).Add(-24 * time.Hour)
	reset := 0
	for _, u := range userXP {
		if u.Streak > 0 && !u.LastActive.IsZero() && u.LastActive.Before(cutoff) {
			u.Streak = 0
			reset++
		}
	}
	return reset
}

// Reset clears the in-memory map. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	userXP = make(map[string]*UserXP)
}
