package org511

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
)

type Stop struct {
	ID       string        `json:"id"`
	Name     string        `json:"Name"`
	Location *StopLocation `json:"Location,omitempty"`
	StopType string        `json:"StopType,omitempty"`
}

type StopLocation struct {
	Longitude json.Number
	Latitude  json.Number
}

type stopsResponse struct {
	Contents *struct {
		DataObjects *struct {
			ScheduledStopPoint []Stop
		} `json:"dataObjects"`
	}
}

// Stops requests every stop of the operator, eg. 24th St & Folsom St.
// 511.org is slow to answer this one.
func (c *Client) Stops(ctx context.Context) ([]Stop, error) {
	params := url.Values{
		"format":      {"json"},
		"operator_id": {c.OperatorID},
	}

	return get(ctx, c, methodStops, params, parseStops)
}

func parseStops(body []byte) ([]Stop, error) {
	var response stopsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	if response.Contents == nil || response.Contents.DataObjects == nil {
		return nil, errors.New("missing Contents.dataObjects")
	}

	return response.Contents.DataObjects.ScheduledStopPoint, nil
}
