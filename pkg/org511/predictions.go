package org511

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Prediction is one upcoming departure of a vehicle from a stop
type Prediction struct {
	StopName            string `json:"stopName"`
	Operator            string `json:"operator"`
	LineID              string `json:"lineId"`
	LineName            string `json:"lineName"`
	Direction           string `json:"direction"`
	MinutesTilDeparture int    `json:"minutesTilDeparture"`
}

// PredictionsForStop requests the predictions for every line serving the stop
func (c *Client) PredictionsForStop(ctx context.Context, stopID string) ([]Prediction, error) {
	params := url.Values{
		"format":   {"json"},
		"agency":   {c.Agency},
		"stopCode": {stopID},
	}

	return get(ctx, c, methodStopMonitoring, params, func(body []byte) ([]Prediction, error) {
		visits, err := parseStopVisits(body)
		if err != nil {
			return nil, err
		}

		return MapStopVisits(visits, c.now())
	})
}

func parseStopVisits(body []byte) ([]*MonitoredStopVisit, error) {
	var response StopMonitoringResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	if response.ServiceDelivery == nil || response.ServiceDelivery.StopMonitoringDelivery == nil {
		return nil, errors.New("missing ServiceDelivery.StopMonitoringDelivery")
	}

	return response.ServiceDelivery.StopMonitoringDelivery.MonitoredStopVisit, nil
}

// MapStopVisits flattens the SIRI stop visits into Predictions relative to now
func MapStopVisits(visits []*MonitoredStopVisit, now time.Time) ([]Prediction, error) {
	predictions := make([]Prediction, 0, len(visits))

	for i, visit := range visits {
		if visit == nil || visit.MonitoredVehicleJourney == nil || visit.MonitoredVehicleJourney.MonitoredCall == nil {
			return nil, fmt.Errorf("stop visit %d has no MonitoredVehicleJourney.MonitoredCall", i)
		}

		journey := visit.MonitoredVehicleJourney
		call := journey.MonitoredCall

		departureTime, err := time.Parse(time.RFC3339, call.AimedDepartureTime)
		if err != nil {
			return nil, fmt.Errorf("stop visit %d departure time: %w", i, err)
		}

		predictions = append(predictions, Prediction{
			StopName:            call.StopPointName,
			Operator:            journey.OperatorRef,
			LineID:              journey.LineRef,
			LineName:            journey.PublishedLineName,
			Direction:           journey.DirectionRef,
			MinutesTilDeparture: int(departureTime.Sub(now) / time.Minute),
		})
	}

	return predictions, nil
}
