package server

import (
	auction "auction-market/internal/auctionService"
	bidding "auction-market/internal/biddingService"
	messaging "auction-market/internal/messagingService"
	auctionhandler "auction-market/services/auction/handler"
	biddinghandler "auction-market/services/bidding/handler"
	messaginghandler "auction-market/services/messaging/handler"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. Public reads
// need no identity; every mutating or personal route requires the
// authenticated caller header.
func SetupRouter(auctionSvc *auction.AuctionService, biddingSvc *bidding.BiddingService, messagingSvc *messaging.MessagingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionSvc)
	biddingHandler := biddinghandler.NewBiddingHandler(biddingSvc)
	messagingHandler := messaginghandler.NewMessagingHandler(messagingSvc)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:id/bids", biddingHandler.GetBidsHandler)
		auctions.GET("/:id/bids/winning", biddingHandler.GetWinningBidHandler)

		auctions.POST("", utils.RequireIdentity, auctionHandler.CreateAuctionHandler)
		auctions.DELETE("/:id", utils.RequireIdentity, auctionHandler.DeleteAuctionHandler)
		auctions.GET("/my", utils.RequireIdentity, auctionHandler.MyAuctionsHandler)
		auctions.POST("/:id/bids", utils.RequireIdentity, biddingHandler.PlaceBidHandler)
	}

	messages := router.Group("/messages", utils.RequireIdentity)
	{
		messages.POST("", messagingHandler.SendMessageHandler)
		messages.GET("/inbox", messagingHandler.InboxHandler)
		messages.GET("/sent", messagingHandler.SentHandler)
		messages.GET("/thread", messagingHandler.ThreadHandler)
		messages.DELETE("/:id", messagingHandler.DeleteMessageHandler)
		messages.POST("/:id/read", messagingHandler.MarkReadHandler)
	}

	return router
}
