package org511

import (
	"context"
	"net/url"
)

// Operator is a transit agency known to 511.org, eg. SFMTA, BART, Caltrain
type Operator struct {
	ID                     string `json:"Id"`
	Name                   string `json:"Name"`
	ShortName              string `json:"ShortName,omitempty"`
	SiriOperatorRef        string `json:"SiriOperatorRef,omitempty"`
	TimeZone               string `json:"TimeZone,omitempty"`
	DefaultLanguage        string `json:"DefaultLanguage,omitempty"`
	ContactTelephoneNumber string `json:"ContactTelephoneNumber,omitempty"`
	WebSite                string `json:"WebSite,omitempty"`
	PrimaryMode            string `json:"PrimaryMode,omitempty"`
	PrivateCode            string `json:"PrivateCode,omitempty"`
	Monitored              bool   `json:"Monitored"`
	OtherModes             string `json:"OtherModes,omitempty"`
}

func (c *Client) Operators(ctx context.Context) ([]Operator, error) {
	params := url.Values{
		"format": {"json"},
	}

	return get(ctx, c, methodOperators, params, decodeJSON[[]Operator])
}
