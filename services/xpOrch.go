package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"launchpadBot/services/common"
	"launchpadBot/services/gamificationService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func ShowXP(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	userID := i.Member.User.ID
	guildID := i.GuildID

	u := gamificationService.Get(userID, guildID)
	if u == nil {
		respond(s, i, "No XP yet. Say something in the server to get started!", true)
		return
	}

	info := gamificationService.CalculateLevel(u.XP)
	badges := "none yet"
	if len(u.Badges) > 0 {
		badges = strings.Join(u.Badges, ", ")
	}

	response := fmt.Sprintf(
		"**Level %d** — %.0f XP (%.0f until level %d)\nStreak: %d day(s) • Questions asked: %d\nBadges: %s",
		u.Level, u.XP, info.XPForNext-u.XP, u.Level+1, u.Streak, u.QuestionCount, badges,
	)
	respond(s, i, response, true)
}

func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	top := gamificationService.Top(i.GuildID, 10)
	if len(top) == 0 {
		respond(s, i, "No one has earned XP yet.", false)
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var sb strings.Builder
	for idx, u := range top {
		marker := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			marker = medals[idx]
		}
		name := u.Username
		if name == "" {
			name = u.DiscordID
		}
		sb.WriteString(fmt.Sprintf("%s **%s** — %.0f XP (level %d)\n", marker, name, u.XP, u.Level))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "XP Leaderboard",
		Description: sb.String(),
		Color:       0x5865F2,
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		common.SendError(s, nil, err, db)
	}
}

func ShowBounties(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, deps *Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	list, err := deps.Bounties.List(ctx)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error fetching bounties: %v", err), db)
		return
	}

	var sb strings.Builder
	open := 0
	for _, b := range list.Bounties {
		if b.Status != "open" {
			continue
		}
		open++
		sb.WriteString(fmt.Sprintf("* **%s** — %.0f %s\n  %s\n", b.Title, b.Reward, b.Currency, b.URL))
		if open == 10 {
			break
		}
	}

	if open == 0 {
		respond(s, i, "No open bounties right now. Check back soon!", true)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Open Bounties",
		Description: sb.String(),
		Color:       0x57F287,
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, nil, err, db)
	}
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		common.Log.Warnf("Error sending interaction: %v", err)
	}
}
