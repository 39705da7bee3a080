package gamificationService

import (
	"testing"
	"time"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp       float64
		expected int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{100, 3},
		{499, 5},
		{500, 5},
		{625, 6},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := CalculateLevel(tt.xp).Level; got != tt.expected {
			t.Errorf("CalculateLevel(%v).Level = %d, expected %d", tt.xp, got, tt.expected)
		}
	}
}

func TestCalculateLevelProgress(t *testing.T) {
	info := CalculateLevel(30)
	if info.Level != 2 {
		t.Fatalf("expected level 2 at 30 XP, got %d", info.Level)
	}
	if info.XPForNext != 100 {
		t.Errorf("expected next threshold 100, got %v", info.XPForNext)
	}
	if info.XPProgress != 5 {
		t.Errorf("expected 5 XP into level 2, got %v", info.XPProgress)
	}
}

func TestAwardXPAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	AwardXP("u1", "g1", "alice", 10, false)
	u, _ := AwardXP("u1", "g1", "alice", 15, false)

	if u.XP != 25 {
		t.Errorf("expected 25 XP, got %v", u.XP)
	}
	if u.Level != 2 {
		t.Errorf("expected level 2 at 25 XP, got %d", u.Level)
	}
	if u.Streak != 1 {
		t.Errorf("expected streak 1 for same-day activity, got %d", u.Streak)
	}
}

func TestAdvanceStreak(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	}

	tests := []struct {
		name       string
		lastActive time.Time
		now        time.Time
		streak     int
		expected   int
		extended   bool
	}{
		{"first ever activity", time.Time{}, day(0), 0, 1, false},
		{"same day again", day(0), day(0), 3, 3, false},
		{"same day different hour", day(0), day(0).Add(9 * time.Hour), 3, 3, false},
		{"consecutive day extends", day(0), day(1), 3, 4, true},
		{"two-day gap resets", day(0), day(2), 6, 1, false},
		{"week gap resets", day(0), day(7), 10, 1, false},
	}

	for _, tt := range tests {
		streak, extended := advanceStreak(tt.lastActive, tt.now, tt.streak)
		if streak != tt.expected || extended != tt.extended {
			t.Errorf("%s: advanceStreak = (%d, %v), expected (%d, %v)",
				tt.name, streak, extended, tt.expected, tt.extended)
		}
	}
}

func TestBadgesAreNotDoubleGranted(t *testing.T) {
	Reset()
	defer Reset()

	_, earned := AwardXP("u1", "g1", "alice", 1, true)
	if len(earned) != 1 || earned[0] != "first-question" {
		t.Fatalf("expected first-question badge, got %v", earned)
	}

	u, earned := AwardXP("u1", "g1", "alice", 1, true)
	if len(earned) != 0 {
		t.Errorf("expected no new badges on second question, got %v", earned)
	}

	count := 0
	for _, b := range u.Badges {
		if b == "first-question" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first-question badge granted %d times", count)
	}
}

func TestQuestionBadgeThresholds(t *testing.T) {
	Reset()
	defer Reset()

	var u *UserXP
	for n := 0; n < 10; n++ {
		u, _ = AwardXP("u1", "g1", "alice", 1, true)
	}
	if !containsBadge(u.Badges, "curious") {
		t.Errorf("expected curious badge after 10 questions, badges: %v", u.Badges)
	}
	if containsBadge(u.Badges, "scholar") {
		t.Error("scholar badge should need 50 questions")
	}
}

func TestTopOrdersByXP(t *testing.T) {
	Reset()
	defer Reset()

	AwardXP("u1", "g1", "alice", 10, false)
	AwardXP("u2", "g1", "bob", 50, false)
	AwardXP("u3", "g2", "carol", 99, false)

	top := Top("g1", 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 users in g1, got %d", len(top))
	}
	if top[0].DiscordID != "u2" {
		t.Errorf("expected u2 first, got %s", top[0].DiscordID)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	Reset()
	defer Reset()

	if Get("nobody", "g1") != nil {
		t.Error("expected nil for unknown user")
	}

	AwardXP("u1", "g1", "alice", 1, true)
	copied := Get("u1", "g1")
	copied.XP = 9999
	copied.Badges = append(copied.Badges, "fake")

	if u := Get("u1", "g1"); u.XP == 9999 || containsBadge(u.Badges, "fake") {
		t.Error("mutating the returned copy should not affect the stored record")
	}
}

func containsBadge(badges []string, badge string) bool {
	for _, b := range badges {
		if b == badge {
			return true
		}
	}
	return false
}
