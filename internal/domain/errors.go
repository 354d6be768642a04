package domain

import "errors"

var (
	ErrMalformedBody       = errors.New("invalid JSON body")
	ErrMissingFields       = errors.New("missing required fields: destination and weight_kg are required")
	ErrInvalidWeight       = errors.New("weight_kg must be a positive number")
	ErrInvalidDestination  = errors.New("destination must be a string")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrBodyTooLarge        = errors.New("request body too large")
	ErrInvalidTariff       = errors.New("invalid tariff record")
	ErrUnsupportedSource   = errors.New("unsupported tariff source")
)
