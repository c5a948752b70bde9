package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SanjeevViswambharan/bridge-backend/config"
	"github.com/SanjeevViswambharan/bridge-backend/internal/auth"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/engine"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/manager"
	"github.com/SanjeevViswambharan/bridge-backend/internal/lobby"
	"github.com/SanjeevViswambharan/bridge-backend/internal/middleware"
	"github.com/SanjeevViswambharan/bridge-backend/internal/storage"
	"github.com/SanjeevViswambharan/bridge-backend/internal/utils"
	"github.com/SanjeevViswambharan/bridge-backend/internal/websocket"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. Lobby queue backend: redis when configured, memory otherwise
	//-------------------------------------------------------
	var repo lobby.Repo
	if config.C.Redis.Addr != "" {
		if err := storage.InitRedis(
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Log.Fatal("redis init failed", "err", err)
		}
		repo = lobby.NewRedisRepo(storage.Rdb)
	} else {
		repo = lobby.NewMemoryRepo()
	}

	//-------------------------------------------------------
	// 2. Gin + CORS + liveness
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. Hub (must start before anything broadcasts)
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()

	//-------------------------------------------------------
	// 4. Game core: registry, engine, manager
	//-------------------------------------------------------
	registry := manager.NewRegistry()
	eng := engine.New(hub)
	gameMgr := manager.NewGameManager(registry, eng)
	go gameMgr.Run()

	hub.OnIncoming = gameMgr.HandleClientMessage
	hub.OnDisconnect = gameMgr.HandleDisconnect

	//-------------------------------------------------------
	// 5. Auth
	//-------------------------------------------------------
	secret := []byte(config.C.JWT.Secret)
	authGroup := r.Group("/auth")
	{
		ah := auth.NewHandler(secret)
		authGroup.POST("/guest", ah.Guest)
	}

	//-------------------------------------------------------
	// 6. Authenticated surface: websocket entry + lobby
	//-------------------------------------------------------
	svc := lobby.NewService(repo, config.C.Lobby.TTLSeconds, hub)

	authed := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		authed.GET("/ws", websocket.ServeWS(hub))

		lh := lobby.NewHandler(svc)
		authed.POST("/lobby/join", lh.Join)
		authed.POST("/lobby/cancel", lh.Cancel)
	}

	//-------------------------------------------------------
	// 7. Serve
	//-------------------------------------------------------
	utils.Log.Info("server running", "port", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Log.Fatal("server stopped", "err", err)
	}
}
