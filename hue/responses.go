package hue

import (
	"encoding/json"
	"fmt"
)

type LightState struct {
	On        bool      `json:"on"`
	Bri       int       `json:"bri"`
	Hue       int       `json:"hue"`
	Sat       int       `json:"sat"`
	XY        []float64 `json:"xy"`
	CT        int       `json:"ct"`
	Alert     string    `json:"alert"`
	Effect    string    `json:"effect"`
	ColorMode string    `json:"colormode"`
	Reachable bool      `json:"reachable"`
}

type Light struct {
	State            LightState `json:"state"`
	Type             string     `json:"type"`
	Name             string     `json:"name"`
	ModelID          string     `json:"modelid"`
	ManufacturerName string     `json:"manufacturername"`
	UniqueID         string     `json:"uniqueid"`
	SWVersion        string     `json:"swversion"`
}

// Lights is keyed by the bridge's light id.
type Lights map[string]Light

type Group struct {
	Name   string     `json:"name"`
	Lights []string   `json:"lights"`
	Type   string     `json:"type"`
	Class  string     `json:"class"`
	Action LightState `json:"action"`
	State  struct {
		AllOn bool `json:"all_on"`
		AnyOn bool `json:"any_on"`
	} `json:"state"`
}

type Groups map[string]Group

// StateUpdate is a partial light state. Only the fields that are set are sent
// to the bridge.
type StateUpdate struct {
	On             *bool  `json:"on,omitempty"`
	TransitionTime *int   `json:"transitiontime,omitempty"`
	Alert          string `json:"alert,omitempty"`
	CT             *int   `json:"ct,omitempty"`
	H              *int   `json:"h,omitempty"`
	S              *int   `json:"s,omitempty"`
	B              *int   `json:"b,omitempty"`
}

// Response is what the bridge sent back for a PUT. It is returned as-is, the
// status code is not checked.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// BridgeError is one entry of the error envelope the v1 api returns, with a
// 200 status, when it rejects part of a request.
type BridgeError struct {
	Type        int    `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (e BridgeError) Error() string {
	return fmt.Sprintf("hue bridge error %d at %s: %s", e.Type, e.Address, e.Description)
}

type resultItem struct {
	Error   *BridgeError   `json:"error"`
	Success map[string]any `json:"success"`
}

// Errors decodes the bridge error entries contained in the response body.
func (r *Response) Errors() ([]BridgeError, error) {
	var items []resultItem
	if err := json.Unmarshal(r.Body, &items); err != nil {
		return nil, fmt.Errorf("error parsing hue bridge response: %w", err)
	}

	var errs []BridgeError
	for _, item := range items {
		if item.Error != nil {
			errs = append(errs, *item.Error)
		}
	}
	return errs, nil
}
