package model

// Fixed response bodies
const (
	MsgPlanetNotFound = "Ooops, We only have 9 planets and a sun. Select a number from 0 - 9"
	MsgPlanetError    = "Error in Planet Data"
	MsgDocsReadError  = "Error reading file"
)

const (
	StatusLive  = "live"
	StatusReady = "ready"
)

// Lookup outcomes, used as metric labels
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupInvalid  = "invalid"
	LookupError    = "error"
)
