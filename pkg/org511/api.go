package org511

const DefaultAPIURL = "http://api.511.org/transit/"

const DefaultOperatorID = "SFMTA"
const DefaultAgency = "sf-muni"

const (
	methodOperators      = "operators"
	methodLines          = "lines"
	methodStops          = "stops"
	methodStopMonitoring = "StopMonitoring"
)
