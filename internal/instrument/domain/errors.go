package domain

import "errors"

var (
	ErrMalformedDate      = errors.New("date must be an 8-digit YYYYMMDD string")
	ErrInvalidMarketValue = errors.New("invalid market value")
	ErrNoDefaultModel     = errors.New("no default pricing model for instrument")
	ErrInvalidOptionType  = errors.New("invalid option type")
	ErrInvalidExpiryType  = errors.New("invalid expiry type")
	ErrInvalidStrike      = errors.New("strike must be a positive value")
	ErrUnderlyingMismatch = errors.New("market data does not match contract underlying")
)
