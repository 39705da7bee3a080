package controllers

import (
	"net/http"

	"launchpadBot/services/bountyService"
	"launchpadBot/services/common"
	"launchpadBot/services/oauthService"
	"launchpadBot/services/sheetsService"

	"github.com/gin-gonic/gin"
)

// Package-level handles set once by Init from main.
var (
	Oauth    *oauthService.Service
	Bounties *bountyService.Service
	Sheets   *sheetsService.Forwarder
)

func Init(oauth *oauthService.Service, bounties *bountyService.Service, sheets *sheetsService.Forwarder) {
	Oauth = oauth
	Bounties = bounties
	Sheets = sheets
}

// GetBounties serves the cached bounty board to the website.
func GetBounties(c *gin.Context) {
	list, err := Bounties.List(c.Request.Context())
	if err != nil {
		common.Log.Errorf("error serving bounties: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "bounty board unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bounties": list.Bounties,
		"total":    list.Total,
	})
}
