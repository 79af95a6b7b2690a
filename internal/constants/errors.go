package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIEndpoint     = errors.New("no API endpoint configured, use --api or set CLOUDRES_API")
	ErrInvalidOutput     = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidCacheKind  = errors.New("invalid completion kind, expected uuid or human_id")
	ErrUnknownCollection = errors.New("unknown resource collection")
)
