package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found in the Open Food Facts database
	ErrProductNotFound = errors.New("product not found in Open Food Facts database")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUpstreamFailure is returned when an Open Food Facts API request fails
	ErrUpstreamFailure = errors.New("Open Food Facts API request failed")
)
