package services

import (
	"context"
	"strings"
	"time"

	"launchpadBot/services/common"
	"launchpadBot/services/gamificationService"
	"launchpadBot/services/guildService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

const (
	questionXP   = 5.0
	answerMaxLen = 1990 // Discord caps messages at 2000 chars
	askTimeout   = 90 * time.Second
)

// Ask handles the /ask slash command. The response is deferred because
// the model call can take a while.
func Ask(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, deps *Deps) {
	question := i.ApplicationCommandData().Options[0].StringValue()
	userID := i.Member.User.ID
	guildID := i.GuildID

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild, err := guildService.GetGuildInfo(s, db, guildID, i.ChannelID)
	if err != nil {
		common.SendError(s, nil, err, db)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	answer, cached := deps.Responder.GenerateResponse(ctx, userID, guildID, question, guild.PremiumEnabled)
	answer = common.Truncate(answer, answerMaxLen)

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: answer,
	})
	if err != nil {
		common.SendError(s, nil, err, db)
		return
	}

	// Cached answers don't earn question XP; asking the same thing
	// twice isn't engagement.
	if !cached {
		username := common.GetUsernameFromUser(i.Member.User)
		_, earned := gamificationService.AwardXP(userID, guildID, username, questionXP, true)
		announceBadges(s, i.ChannelID, username, earned)
	}
}

// HandleSupportMessage auto-answers questions posted in the bound
// support channel and drips message XP everywhere else.
func HandleSupportMessage(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, deps *Deps) {
	if m.Author.Bot {
		return
	}

	guild, err := guildService.GetGuildInfo(s, db, m.GuildID, m.ChannelID)
	if err != nil {
		common.Log.Warnf("Error fetching guild info: %v", err)
		return
	}

	username := common.GetUsernameFromUser(m.Author)

	if m.ChannelID == guild.SupportChannelID && looksLikeQuestion(s, m) {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()

		answer, cached := deps.Responder.GenerateResponse(ctx, m.Author.ID, m.GuildID, m.Content, guild.PremiumEnabled)
		answer = common.Truncate(answer, answerMaxLen)

		_, err := s.ChannelMessageSendReply(m.ChannelID, answer, m.Reference())
		if err != nil {
			common.Log.Warnf("Error sending support reply: %v", err)
		}

		if !cached {
			_, earned := gamificationService.AwardXP(m.Author.ID, m.GuildID, username, questionXP, true)
			announceBadges(s, m.ChannelID, username, earned)
			return
		}
	}

	_, earned := gamificationService.AwardXP(m.Author.ID, m.GuildID, username, guild.XPPerMessage, false)
	announceBadges(s, m.ChannelID, username, earned)
}

// looksLikeQuestion gates auto-answers so the bot doesn't reply to every
// message in the channel.
func looksLikeQuestion(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	content := strings.TrimSpace(m.Content)
	if content == "" {
		return false
	}
	for _, mention := range m.Mentions {
		if s.State.User != nil && mention.ID == s.State.User.ID {
			return true
		}
	}
	if strings.Contains(content, "?") {
		return true
	}
	lower := strings.ToLower(content)
	for _, prefix := range []string{"how ", "why ", "what ", "when ", "where ", "can i ", "does "} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func announceBadges(s *discordgo.Session, channelID, username string, earned []string) {
	for _, badge := range earned {
		_, err := s.ChannelMessageSend(channelID, "🏅 **"+username+"** earned the **"+badge+"** badge!")
		if err != nil {
			common.Log.Warnf("Error announcing badge: %v", err)
		}
	}
}
