package services

import (
	"fmt"

	"launchpadBot/services/bountyService"
	"launchpadBot/services/claudeService"
	"launchpadBot/services/guildService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// Deps carries the long-lived pipeline pieces into the handlers. Built
// once in main.
type Deps struct {
	Responder *claudeService.Responder
	Bounties  *bountyService.Service
}

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, deps *Deps) {
	switch i.ApplicationCommandData().Name {
	case "ask":
		Ask(s, i, db, deps)
	case "my-xp":
		ShowXP(s, i, db)
	case "leaderboard":
		ShowLeaderboard(s, i, db)
	case "bounties":
		ShowBounties(s, i, db, deps)
	case "set-support-channel":
		guildService.SetSupportChannel(s, i, db)
	case "set-xp-per-message":
		guildService.SetXPPerMessage(s, i, db)
	case "set-premium":
		guildService.SetPremium(s, i, db)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ask",
			Description: "Ask the support assistant a question",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "question",
					Description: "Your question",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:        "my-xp",
			Description: "Show your XP, level, streak, and badges",
		},
		{
			Name:        "leaderboard",
			Description: "Show the top users by XP",
		},
		{
			Name:        "bounties",
			Description: "List the currently open bounties",
		},
		{
			Name:        "set-support-channel",
			Description: "🛡 Bind the support assistant to this channel - ADMIN ONLY",
		},
		{
			Name:        "set-xp-per-message",
			Description: "🛡 Set the XP awarded per message - ADMIN ONLY",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "xp",
					Description: "XP per message (default 1)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:        "set-premium",
			Description: "🛡 Toggle premium model access for this server - ADMIN ONLY",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "enabled",
					Description: "Whether hard questions may use the most capable model",
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Required:    true,
				},
			},
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		rcmd, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%v' command: %v", cmd.Name, err)
		}
		registeredCommands[i] = rcmd
	}

	return nil
}
