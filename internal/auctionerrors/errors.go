package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrAuctionStarted     = errors.New("auction has already started")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrAuctionClosed      = errors.New("bidding is closed for auction")
	ErrAuctionNotFinished = errors.New("auction has not finished")
	ErrNoWinner           = errors.New("auction has no winner")
	ErrUnauthorized       = errors.New("operation not permitted for user")
)
