package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRetriesExhausted  = errors.New("address lookup retries exhausted")
	ErrMalformedResponse = errors.New("geocoder response has no features array")

	ErrTokenNotReceived    = errors.New("crm token not received")
	ErrClientIDNotReceived = errors.New("crm client id not received")
	ErrInvalidClientData   = errors.New("invalid client data")
)
