package guildService

import (
	"launchpadBot/models"
	"launchpadBot/services/common"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func GetGuildInfo(s *discordgo.Session, db *gorm.DB, guildID string, channelID string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, SupportChannelID: channelID, GuildName: guildInfo.Name, XPPerMessage: 1}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild
	} else {
		checkGuild, err := s.Guild(guildID)
		if err != nil {
			common.SendError(s, nil, err, db)
		} else if guild.GuildName != checkGuild.Name {
			guild.GuildName = checkGuild.Name
			db.Save(&guild)
		}
	}

	return &guild, nil
}

func SetSupportChannel(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		respondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	guild, err := GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild.SupportChannelID = i.ChannelID
	db.Save(guild)

	respondEphemeral(s, i, "Support channel set. I'll answer questions posted here.")
}

func SetXPPerMessage(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		respondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	options := i.ApplicationCommandData().Options
	xp, err := strconv.ParseFloat(options[0].StringValue(), 64)
	if err != nil || xp < 0 {
		respondEphemeral(s, i, "Please provide a non-negative number.")
		return
	}

	guild, err := GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild.XPPerMessage = xp
	db.Save(guild)

	respondEphemeral(s, i, "XP per message updated.")
}

func SetPremium(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		respondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	enabled := i.ApplicationCommandData().Options[0].BoolValue()

	guild, err := GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild.PremiumEnabled = enabled
	db.Save(guild)

	if enabled {
		respondEphemeral(s, i, "Premium enabled. Hard questions now get the most capable model.")
	} else {
		respondEphemeral(s, i, "Premium disabled.")
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.Log.Warnf("Error sending interaction: %v", err)
	}
}
