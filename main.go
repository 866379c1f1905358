package main

import (
	"context"
	"fmt"
	"os"

	auction "auction-market/internal/auctionService"
	bidding "auction-market/internal/biddingService"
	"auction-market/internal/db"
	"auction-market/internal/db/migrations"
	messaging "auction-market/internal/messagingService"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/internal/repository/postgres"
	"auction-market/internal/server"
	"auction-market/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	auctions, bids, messages, profiles := buildStores()

	auctionSvc := auction.NewAuctionService(auctions, profiles)
	biddingSvc := bidding.NewBiddingService(auctions, bids)
	messagingSvc := messaging.NewMessagingService(auctions, messages, biddingSvc)

	router := server.SetupRouter(auctionSvc, biddingSvc, messagingSvc)

	port := getPort()
	fmt.Printf("Starting auction market server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStores selects the storage backend: Postgres when DB_HOST is set,
// the in-memory repository otherwise.
func buildStores() (repository.AuctionStore, repository.BidStore, repository.MessageStore, repository.ProfileDirectory) {
	if os.Getenv("DB_HOST") != "" {
		if err := migrations.RunMigrations(); err != nil {
			utils.Fatal("database migration failed", map[string]any{"error": err.Error()})
		}
		pool, err := db.GetPostgresPool(context.Background())
		if err != nil {
			utils.Fatal("database connection failed", map[string]any{"error": err.Error()})
		}
		utils.Info("using postgres storage backend", nil)
		return postgres.NewAuctionRepository(pool),
			postgres.NewBidRepository(pool),
			postgres.NewMessageRepository(pool),
			postgres.NewUserRepository(pool)
	}

	utils.Info("using in-memory storage backend", nil)
	repo := repository.NewMemoryRepo()
	prepopulate(repo)
	return repo, repo, repo, repo
}

// prepopulate adds sample users and auctions to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "alice", Username: "alice", Location: "Lisbon", Country: "PT"},
		{UserID: "bob", Username: "bob", Location: "Porto", Country: "PT"},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	auctions := []model.Auction{
		{AuctionID: "auction1", Name: "Vintage camera", Description: "Working Zenit-E", StartingPrice: 100, Ends: "2030-01-01T12:00", SellerID: "alice", Location: "Lisbon", Country: "PT"},
		{AuctionID: "auction2", Name: "Road bike", Description: "Mid-90s steel frame", StartingPrice: 250, Ends: "2030-06-01T18:00", SellerID: "bob", Location: "Porto", Country: "PT"},
	}
	for _, a := range auctions {
		repo.AddAuction(a)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
