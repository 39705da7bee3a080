package routes

import (
	"launchpadBot/controllers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the site-facing API.
func SetupRoutes(router *gin.Engine) {
	router.Use(RequestLogger())

	api := router.Group("/api")
	api.Use(RateLimit(5, 10))
	{
		api.POST("/email-capture", controllers.EmailCapture)
		api.GET("/bounties", controllers.GetBounties)

		waitlist := api.Group("/waitlist")
		{
			waitlist.GET("/status", controllers.WaitlistStatus)
		}

		oauth := api.Group("/oauth")
		{
			oauth.GET("/discord/start", controllers.DiscordStart)
			oauth.GET("/discord/callback", controllers.DiscordCallback)
			oauth.GET("/github/start", controllers.GitHubStart)
			oauth.GET("/github/callback", controllers.GitHubCallback)
		}
	}
}
