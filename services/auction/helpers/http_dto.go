package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Categories    string  `json:"categories"`
	StartingPrice float64 `json:"starting_price" binding:"gte=0"`
	Started       string  `json:"started"`
	Ends          string  `json:"ends" binding:"required"`
}
