package org511

import (
	"context"
	"net/url"
)

// Line is a route run by the operator, eg. 22, 33, J
type Line struct {
	ID            string `json:"Id"`
	Name          string `json:"Name"`
	FromDate      string `json:"FromDate,omitempty"`
	ToDate        string `json:"ToDate,omitempty"`
	TransportMode string `json:"TransportMode,omitempty"`
	PublicCode    string `json:"PublicCode,omitempty"`
	SiriLineRef   string `json:"SiriLineRef,omitempty"`
	Monitored     bool   `json:"Monitored"`
	OperatorRef   string `json:"OperatorRef,omitempty"`
}

func (c *Client) Lines(ctx context.Context) ([]Line, error) {
	params := url.Values{
		"format":      {"json"},
		"operator_id": {c.OperatorID},
	}

	return get(ctx, c, methodLines, params, decodeJSON[[]Line])
}
