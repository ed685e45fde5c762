package org511

// SIRI StopMonitoring response as served by 511.org.
// Only the parts the skill reads are mapped.
type StopMonitoringResponse struct {
	ServiceDelivery *struct {
		ResponseTimestamp string
		ProducerRef       string

		StopMonitoringDelivery *struct {
			Version           string `json:"version"`
			ResponseTimestamp string

			MonitoredStopVisit []*MonitoredStopVisit
		}
	}
}

type MonitoredStopVisit struct {
	RecordedAtTime string
	MonitoringRef  string

	MonitoredVehicleJourney *MonitoredVehicleJourney
}

type MonitoredVehicleJourney struct {
	LineRef           string
	DirectionRef      string
	PublishedLineName string

	FramedVehicleJourneyRef struct {
		DataFrameRef           string
		DatedVehicleJourneyRef string
	}

	OperatorRef string

	OriginRef  string
	OriginName string

	DestinationRef  string
	DestinationName string

	VehicleRef string

	MonitoredCall *MonitoredCall
}

type MonitoredCall struct {
	StopPointRef  string
	StopPointName string

	AimedArrivalTime      string
	ExpectedArrivalTime   string
	AimedDepartureTime    string
	ExpectedDepartureTime string
}
