package lights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/hapi/hue"
	"github.com/wheelibin/hapi/inputs"
	"github.com/wheelibin/hapi/internal/constants"
)

var ErrNotImplemented = errors.New("not implemented")

var ErrLengthMismatch = inputs.ErrLengthMismatch

type hueAPI interface {
	GET(ctx context.Context, path string) ([]byte, error)
	PUT(ctx context.Context, path string, body []byte) (*hue.Response, error)
}

// HSB is a hue/saturation/brightness triple as sent to the bridge.
type HSB struct {
	H int
	S int
	B int
}

// Controller reads and changes light state. Nothing is cached, every read goes
// to the bridge.
type Controller struct {
	logger *log.Logger
	hueAPI hueAPI
}

func NewController(logger *log.Logger, hueAPI hueAPI) *Controller {
	return &Controller{logger: logger, hueAPI: hueAPI}
}

func (c *Controller) GetLights(ctx context.Context) (hue.Lights, error) {

	body, err := c.hueAPI.GET(ctx, hue.LightsPath())
	if err != nil {
		return nil, fmt.Errorf("error reading lights from hue bridge: %w", err)
	}

	lights := hue.Lights{}
	if err := json.Unmarshal(body, &lights); err != nil {
		return nil, fmt.Errorf("error parsing lights response: %w", err)
	}

	return lights, nil
}

func (c *Controller) GetLight(ctx context.Context, id int) (*hue.Light, error) {

	body, err := c.hueAPI.GET(ctx, hue.LightPath(id))
	if err != nil {
		return nil, fmt.Errorf("error reading light %d from hue bridge: %w", id, err)
	}

	light := hue.Light{}
	if err := json.Unmarshal(body, &light); err != nil {
		return nil, fmt.Errorf("error parsing light %d response: %w", id, err)
	}

	return &light, nil
}

func (c *Controller) GetGroups(ctx context.Context) (hue.Groups, error) {

	body, err := c.hueAPI.GET(ctx, hue.GroupsPath())
	if err != nil {
		return nil, fmt.Errorf("error reading groups from hue bridge: %w", err)
	}

	groups := hue.Groups{}
	if err := json.Unmarshal(body, &groups); err != nil {
		return nil, fmt.Errorf("error parsing groups response: %w", err)
	}

	return groups, nil
}

func (c *Controller) GetGroup(ctx context.Context, id int) (*hue.Group, error) {

	body, err := c.hueAPI.GET(ctx, hue.GroupPath(id))
	if err != nil {
		return nil, fmt.Errorf("error reading group %d from hue bridge: %w", id, err)
	}

	group := hue.Group{}
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, fmt.Errorf("error parsing group %d response: %w", id, err)
	}

	return &group, nil
}

// Switch inverts the on state of each light in turn. It stops at the first
// failure, returning the responses for the lights already switched.
func (c *Controller) Switch(ctx context.Context, ids inputs.OneOrMany[int]) ([]*hue.Response, error) {
	var responses []*hue.Response

	for _, id := range ids.Values() {
		light, err := c.GetLight(ctx, id)
		if err != nil {
			return responses, err
		}

		c.logger.Debug("Switching light", "id", id, "on", !light.State.On)
		resp, err := c.SetState(ctx, id, hue.StateUpdate{On: lo.ToPtr(!light.State.On)})
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (c *Controller) Pulse(ctx context.Context, ids inputs.OneOrMany[int]) ([]*hue.Response, error) {
	pulse := hue.StateUpdate{
		On:             lo.ToPtr(true),
		TransitionTime: lo.ToPtr(constants.PulseTransitionTime),
		Alert:          constants.AlertSelect,
	}

	var responses []*hue.Response
	for _, id := range ids.Values() {
		resp, err := c.SetState(ctx, id, pulse)
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// SetCT sets the colour temperature (mired) of each light, pairing lights and
// values by position.
func (c *Controller) SetCT(ctx context.Context, ids inputs.OneOrMany[int], cts inputs.OneOrMany[int]) ([]*hue.Response, error) {
	pairs, err := inputs.Pair(ids, cts)
	if err != nil {
		return nil, err
	}

	var responses []*hue.Response
	for _, p := range pairs {
		resp, err := c.SetState(ctx, p.A, hue.StateUpdate{CT: lo.ToPtr(p.B)})
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// SetColour sets the colour of each light, pairing lights and triples by
// position.
func (c *Controller) SetColour(ctx context.Context, ids inputs.OneOrMany[int], colours inputs.OneOrMany[HSB]) ([]*hue.Response, error) {
	pairs, err := inputs.Pair(ids, colours)
	if err != nil {
		return nil, err
	}

	var responses []*hue.Response
	for _, p := range pairs {
		resp, err := c.SetState(ctx, p.A, hue.StateUpdate{
			H: lo.ToPtr(p.B.H),
			S: lo.ToPtr(p.B.S),
			B: lo.ToPtr(p.B.B),
		})
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// TODO decide between one PUT per light and the group 0 action endpoint
func (c *Controller) AllOff(ctx context.Context) error {
	return fmt.Errorf("Controller.AllOff: %w", ErrNotImplemented)
}

func (c *Controller) AllOn(ctx context.Context) error {
	return fmt.Errorf("Controller.AllOn: %w", ErrNotImplemented)
}

// SetState sends a partial state update to a light. The response is returned
// without looking at the status code.
func (c *Controller) SetState(ctx context.Context, id int, state hue.StateUpdate) (*hue.Response, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Setting light state", "id", id, "state", string(data))

	resp, err := c.hueAPI.PUT(ctx, hue.LightStatePath(id), data)
	if err != nil {
		return nil, fmt.Errorf("error updating light %d state: %w", id, err)
	}

	return resp, nil
}
