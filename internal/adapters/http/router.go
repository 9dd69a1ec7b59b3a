package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/adapters/signal"
	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/config"
	"github.com/dkeye/Meet/internal/domain"
)

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware gives every browser a stable token. The per-socket
// connection id is minted separately at upgrade time; this token only ties
// log lines from the same client together.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, core *app.Core) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("MeetSessions", store))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	api := r.Group("/api")

	// POST /api/meetings — create a meeting, returns its short id
	api.POST("/meetings", func(c *gin.Context) {
		id := core.CreateMeeting()
		c.JSON(http.StatusOK, gin.H{
			"meeting_id": id,
			"message":    fmt.Sprintf("Meeting %s created successfully", id),
		})
	})

	// GET /api/meetings — discovery snapshot of live meetings
	api.GET("/meetings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"meetings": core.ListMeetings()})
	})

	// GET /api/meetings/:id — pre-join existence check
	api.GET("/meetings/:id", func(c *gin.Context) {
		id := domain.MeetingID(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"exist": core.MeetingExists(id)})
	})

	// GET /api/webrtc/config — ICE servers for mesh-mode peers
	api.GET("/webrtc/config", func(c *gin.Context) {
		servers := []webrtc.ICEServer{}
		if len(cfg.StunServers) > 0 {
			servers = append(servers, webrtc.ICEServer{URLs: cfg.StunServers})
		}
		c.JSON(http.StatusOK, gin.H{"iceServers": servers})
	})

	ctl := signal.NewController(core, cfg.ReadLimit, cfg.SendBuffer)
	r.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("client_token", c.GetString("client_token")).Msg("ws endpoint hit")
		ctl.HandleWS(ctx, c)
	})

	return r
}
