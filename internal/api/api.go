package api

import (
	"net/http"

	"upline-server/internal/auth"
	commissionHandler "upline-server/internal/commission/handler"
	"upline-server/internal/leaderboard"
	teamrankHandler "upline-server/internal/teamrank/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	authMiddleware     auth.Middleware
	commissionHandler  commissionHandler.Handler
	teamrankHandler    teamrankHandler.Handler
	leaderboardHandler leaderboard.Handler
}

func New(
	router *gin.RouterGroup,
	authMiddleware auth.Middleware,
	commissionHandler commissionHandler.Handler,
	teamrankHandler teamrankHandler.Handler,
	leaderboardHandler leaderboard.Handler,
) API {
	return API{
		router:             router,
		authMiddleware:     authMiddleware,
		commissionHandler:  commissionHandler,
		teamrankHandler:    teamrankHandler,
		leaderboardHandler: leaderboardHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api/v1", a.authMiddleware.Handle)
	{
		purchases := apiGroup.Group("/purchases")
		purchases.POST("", a.commissionHandler.HandleCreatePurchase)
		purchases.POST("/:purchase_id/verify", a.commissionHandler.HandleVerifyPurchase)
		purchases.POST("/:purchase_id/distribute", a.commissionHandler.HandleDistribute)
		purchases.GET("/:purchase_id/ledger", a.commissionHandler.HandleGetDistribution)

		members := apiGroup.Group("/members")
		members.POST("", a.teamrankHandler.HandleCreateMember)
		members.POST("/:member_id/registered", a.teamrankHandler.HandleMemberRegistered)
		members.POST("/:member_id/propagate", a.teamrankHandler.HandlePropagate)
		members.POST("/:member_id/release-claim", a.teamrankHandler.HandleReleaseClaim)
		members.GET("/:member_id", a.teamrankHandler.HandleGetMember)
		members.GET("/:member_id/downline", a.teamrankHandler.HandleGetDownline)
		members.GET("/:member_id/ledger", a.teamrankHandler.HandleGetLedger)
		members.GET("/:member_id/rank", a.teamrankHandler.HandleGetRank)

		apiGroup.GET("/leaderboard", a.leaderboardHandler.HandleGetTopEarners)
		apiGroup.GET("/leaderboard/:member_id", a.leaderboardHandler.HandleGetMemberStanding)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
