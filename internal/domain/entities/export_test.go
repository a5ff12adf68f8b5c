package entities

// URLMatches exports urlMatches for testing.
var URLMatches = urlMatches //nolint:gochecknoglobals // test export

// TrailerBlock exports trailerBlock for testing.
var TrailerBlock = trailerBlock //nolint:gochecknoglobals // test export
