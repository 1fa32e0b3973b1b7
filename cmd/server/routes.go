package main

import (
	"github.com/gin-gonic/gin"
	"lizexpress.backend/internal/interfaces/http/handlers"
	"lizexpress.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler            *handlers.AuthHandler
	profileHandler         *handlers.ProfileHandler
	itemHandler            *handlers.ItemHandler
	listingHandler         *handlers.ListingHandler
	paymentHandler         *handlers.PaymentHandler
	webhookHandler         *handlers.WebhookHandler
	verificationHandler    *handlers.VerificationHandler
	favoriteHandler        *handlers.FavoriteHandler
	chatHandler            *handlers.ChatHandler
	notificationHandler    *handlers.NotificationHandler
	adminHandler           *handlers.AdminHandler
	authMiddleware         gin.HandlerFunc
	optionalAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Item routes (public browse, owner management protected)
		items := v1.Group("/items")
		{
			items.GET("", d.itemHandler.Browse)
			items.GET("/categories", d.itemHandler.Categories)
			items.GET("/mine", d.authMiddleware, d.itemHandler.Mine)
			items.GET("/:id", d.optionalAuthMiddleware, d.itemHandler.Get)
			items.DELETE("/:id", d.authMiddleware, d.itemHandler.Delete)
		}

		// Listing routes (protected). A listing only becomes an item
		// once its fee payment is confirmed.
		listings := v1.Group("/listings")
		listings.Use(d.authMiddleware)
		{
			listings.GET("/fee", d.listingHandler.Quote)
			listings.POST("", middleware.IdempotencyMiddleware(), d.listingHandler.Submit)
			listings.DELETE("/:txRef", d.listingHandler.Abandon)
		}

		// Payment routes (protected)
		payments := v1.Group("/payments")
		payments.Use(d.authMiddleware)
		{
			payments.POST("/verify", middleware.IdempotencyMiddleware(), d.paymentHandler.Verify)
			payments.GET("", d.paymentHandler.History)
		}

		// Webhook for the payment gateway (signature-verified, public)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/flutterwave", d.webhookHandler.HandlePaymentWebhook)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("", d.profileHandler.Update)
			profile.POST("/avatar", d.profileHandler.UploadAvatar)
		}

		// Identity verification routes (protected)
		verification := v1.Group("/verification")
		verification.Use(d.authMiddleware)
		{
			verification.POST("", d.verificationHandler.Submit)
			verification.GET("/status", d.verificationHandler.Status)
			verification.GET("/latest", d.verificationHandler.Latest)
		}

		// Favorite routes (protected)
		favorites := v1.Group("/favorites")
		favorites.Use(d.authMiddleware)
		{
			favorites.GET("", d.favoriteHandler.List)
			favorites.POST("/:itemId", d.favoriteHandler.Add)
			favorites.DELETE("/:itemId", d.favoriteHandler.Remove)
		}

		// Chat routes (protected)
		chats := v1.Group("/chats")
		chats.Use(d.authMiddleware)
		{
			chats.POST("", d.chatHandler.Start)
			chats.GET("", d.chatHandler.List)
			chats.GET("/:id/messages", d.chatHandler.Messages)
			chats.POST("/:id/messages", d.chatHandler.Send)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.GET("/unread-count", d.notificationHandler.UnreadCount)
			notifications.POST("/:id/read", d.notificationHandler.MarkRead)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/status", d.adminHandler.SetUserStatus)

			admin.GET("/items/pending", d.adminHandler.PendingItems)
			admin.POST("/items/:id/approve", d.adminHandler.ApproveItem)
			admin.POST("/items/:id/reject", d.adminHandler.RejectItem)

			admin.GET("/verifications/pending", d.adminHandler.PendingVerifications)
			admin.POST("/verifications/:id/review", d.adminHandler.ReviewVerification)
		}
	}
}
