package main

import (
	"context"
	"os"

	"launchpadBot/controllers"
	"launchpadBot/database"
	"launchpadBot/routes"
	"launchpadBot/scheduler"
	"launchpadBot/services"
	"launchpadBot/services/bountyService"
	"launchpadBot/services/cacheService"
	"launchpadBot/services/claudeService"
	"launchpadBot/services/common"
	"launchpadBot/services/gamificationService"
	"launchpadBot/services/githubService"
	"launchpadBot/services/oauthService"
	"launchpadBot/services/ragService"
	"launchpadBot/services/sheetsService"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var deps *services.Deps

func init() {
	err := godotenv.Load()
	if err != nil {
		common.InitLogger()
		common.Log.Warn("No .env file found, relying on process environment")
	} else {
		common.InitLogger()
	}

	if err := database.InitDB(); err != nil {
		common.Log.Fatalf("%v", err)
	}
}

func main() {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		common.Log.Fatal("DISCORD_BOT_TOKEN not set in environment variables")
	}

	// Cache backend: Redis when configured, in-memory otherwise.
	var cache cacheService.Cache
	var memCache *cacheService.MemoryCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisCache, err := cacheService.NewRedisCache(redisURL)
		if err != nil {
			common.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		cache = redisCache
	} else {
		memCache = cacheService.NewMemoryCache()
		cache = memCache
	}

	llm, err := claudeService.NewClient(os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		common.Log.Fatalf("Error creating LLM client: %v", err)
	}

	bounties := bountyService.NewService(cache)

	responder := &claudeService.Responder{
		LLM:      llm,
		Cache:    cache,
		Index:    ragService.DefaultIndex(),
		Bounties: bounties,
	}

	// GitHub context source is optional; skip it when no token is set.
	if ghToken := os.Getenv("GITHUB_TOKEN"); ghToken != "" {
		gh, err := githubService.NewService(context.Background(), ghToken, os.Getenv("GITHUB_REPO"))
		if err != nil {
			common.Log.Warnf("GitHub context source disabled: %v", err)
		} else {
			responder.GitHub = gh
		}
	}

	deps = &services.Deps{Responder: responder, Bounties: bounties}

	if err := services.RunReferralCodeBackfill(database.DB); err != nil {
		common.Log.Fatalf("Error running migrations: %v", err)
	}
	if err := gamificationService.Warm(database.DB); err != nil {
		common.Log.Warnf("Error warming XP map: %v", err)
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		common.Log.Fatalf("Error creating Discord session: %v", err)
	}

	dg.AddHandler(interactionCreate)
	dg.AddHandler(messageCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Answering questions!")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	err = dg.Open()
	if err != nil {
		common.Log.Fatalf("Error opening Discord session: %v", err)
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		common.Log.Fatalf("Error registering commands: %v", err)
	}

	scheduler.SetupCron(database.DB, bounties, memCache)

	// Warm the bounty cache so the first /api/bounties hit is fast.
	go func() {
		if err := bounties.Refresh(context.Background()); err != nil {
			common.Log.Warnf("initial bounty refresh failed: %v", err)
		}
	}()

	// Site API.
	controllers.Init(oauthService.NewService(), bounties, sheetsService.NewForwarder())
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	go func() {
		if err := router.Run(":" + port); err != nil {
			common.Log.Fatalf("Error running API server: %v", err)
		}
	}()

	common.Log.Info("Bot is running. Press CTRL+C to exit.")
	select {}
}

func messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}
	services.HandleSupportMessage(s, m, database.DB, deps)
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, database.DB, deps)
	}
}
