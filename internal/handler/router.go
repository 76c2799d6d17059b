package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"presale/adminhub/internal/config"
	"presale/adminhub/internal/handler/middleware"
	jwtpkg "presale/adminhub/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	authHandler *AuthHandler,
	rewardHandler *RewardHandler,
	donationHandler *DonationHandler,
	withdrawalHandler *WithdrawalHandler,
	kycHandler *KYCHandler,
	userHandler *UserHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Logout needs a valid access token but not the admin allow list
	authProtected := r.Group("/api/v1/auth")
	authProtected.Use(middleware.JWTAuth(jwtManager))
	{
		authProtected.POST("/logout", authHandler.Logout)
	}

	// Everything else is operator-only (JWT + admin allow list)
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuth(jwtManager))
	admin.Use(middleware.AdminAuth(cfg.Admin.UserIDs))
	{
		// Reward code analytics
		admin.GET("/reward-codes", rewardHandler.ListCodes)
		admin.GET("/reward-codes/leaderboards", rewardHandler.Leaderboards)
		admin.POST("/reward-codes", rewardHandler.CreateCode)
		admin.POST("/reward-codes/:code/disable", rewardHandler.DisableCode)
		admin.POST("/reward-codes/refresh", rewardHandler.RefreshSnapshot)

		// Donations
		admin.GET("/donations", donationHandler.List)
		admin.GET("/donations/summary", donationHandler.Summary)
		admin.GET("/donations/:id", donationHandler.Get)
		admin.POST("/donations/:id/confirm", donationHandler.Confirm)
		admin.POST("/donations/:id/fail", donationHandler.MarkFailed)

		// Withdrawals
		admin.GET("/withdrawals", withdrawalHandler.List)
		admin.GET("/withdrawals/:id", withdrawalHandler.Get)
		admin.POST("/withdrawals/:id/approve", withdrawalHandler.Approve)
		admin.POST("/withdrawals/:id/reject", withdrawalHandler.Reject)
		admin.POST("/withdrawals/:id/pay", withdrawalHandler.MarkPaid)

		// KYC review
		admin.GET("/kyc", kycHandler.List)
		admin.GET("/kyc/:id", kycHandler.Get)
		admin.POST("/kyc/:id/review", kycHandler.Review)
		admin.POST("/kyc/validate-id", kycHandler.ValidateID)

		// Users
		admin.GET("/users", userHandler.List)
		admin.GET("/users/:id", userHandler.Get)
	}

	return r
}
