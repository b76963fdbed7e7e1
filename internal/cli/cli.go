package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/wheelibin/hapi/hue"
	"github.com/wheelibin/hapi/inputs"
	"github.com/wheelibin/hapi/lights"
)

var ErrUsage = errors.New("usage")

const Usage = `usage:
  hapi [flags] lights [ID]
  hapi [flags] groups [ID]
  hapi [flags] switch ID[,ID...]
  hapi [flags] pulse ID[,ID...]
  hapi [flags] ct ID[,ID...] CT[,CT...]
  hapi [flags] colour ID[,ID...] H:S:B[,H:S:B...]
  hapi [flags] all-on | all-off`

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e8c547"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d9534f"))
)

type lightController interface {
	GetLights(ctx context.Context) (hue.Lights, error)
	GetLight(ctx context.Context, id int) (*hue.Light, error)
	GetGroups(ctx context.Context) (hue.Groups, error)
	GetGroup(ctx context.Context, id int) (*hue.Group, error)
	Switch(ctx context.Context, ids inputs.OneOrMany[int]) ([]*hue.Response, error)
	Pulse(ctx context.Context, ids inputs.OneOrMany[int]) ([]*hue.Response, error)
	SetCT(ctx context.Context, ids inputs.OneOrMany[int], cts inputs.OneOrMany[int]) ([]*hue.Response, error)
	SetColour(ctx context.Context, ids inputs.OneOrMany[int], colours inputs.OneOrMany[lights.HSB]) ([]*hue.Response, error)
	AllOff(ctx context.Context) error
	AllOn(ctx context.Context) error
}

// Run executes a single command against the controller, writing its output
// to out.
func Run(ctx context.Context, c lightController, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {

	case "lights":
		if len(rest) == 0 {
			ls, err := c.GetLights(ctx)
			if err != nil {
				return err
			}
			printLights(out, ls)
			return nil
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		l, err := c.GetLight(ctx, id)
		if err != nil {
			return err
		}
		printLights(out, hue.Lights{strconv.Itoa(id): *l})
		return nil

	case "groups":
		if len(rest) == 0 {
			groups, err := c.GetGroups(ctx)
			if err != nil {
				return err
			}
			printGroups(out, groups)
			return nil
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		g, err := c.GetGroup(ctx, id)
		if err != nil {
			return err
		}
		printGroups(out, hue.Groups{strconv.Itoa(id): *g})
		return nil

	case "switch", "pulse":
		if len(rest) != 1 {
			return fmt.Errorf("%w: %s takes one list of light ids", ErrUsage, cmd)
		}
		ids, err := ParseList(rest[0], parseID)
		if err != nil {
			return err
		}
		op := c.Switch
		if cmd == "pulse" {
			op = c.Pulse
		}
		responses, err := op(ctx, ids)
		printResponses(out, ids.Values(), responses)
		return err

	case "ct":
		if len(rest) != 2 {
			return fmt.Errorf("%w: ct takes a list of light ids and a list of values", ErrUsage)
		}
		ids, err := ParseList(rest[0], parseID)
		if err != nil {
			return err
		}
		cts, err := ParseList(rest[1], strconv.Atoi)
		if err != nil {
			return err
		}
		responses, err := c.SetCT(ctx, ids, cts)
		printResponses(out, ids.Values(), responses)
		return err

	case "colour", "color":
		if len(rest) != 2 {
			return fmt.Errorf("%w: colour takes a list of light ids and a list of H:S:B values", ErrUsage)
		}
		ids, err := ParseList(rest[0], parseID)
		if err != nil {
			return err
		}
		colours, err := ParseList(rest[1], ParseHSB)
		if err != nil {
			return err
		}
		responses, err := c.SetColour(ctx, ids, colours)
		printResponses(out, ids.Values(), responses)
		return err

	case "all-on":
		return c.AllOn(ctx)

	case "all-off":
		return c.AllOff(ctx)
	}

	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// ParseList parses "a,b,c" into Many(a, b, c) and a lone "a" into One(a).
func ParseList[T any](s string, parse func(string) (T, error)) (inputs.OneOrMany[T], error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string { return strings.TrimSpace(p) })

	values := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := parse(p)
		if err != nil {
			return inputs.OneOrMany[T]{}, fmt.Errorf("invalid value %q: %w", p, err)
		}
		values = append(values, v)
	}

	if len(values) == 1 {
		return inputs.One(values[0]), nil
	}
	return inputs.Many(values...), nil
}

// ParseHSB parses "h:s:b".
func ParseHSB(s string) (lights.HSB, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return lights.HSB{}, fmt.Errorf("%w: colour must be H:S:B", ErrUsage)
	}
	hsb := [3]int{}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return lights.HSB{}, err
		}
		hsb[i] = v
	}
	return lights.HSB{H: hsb[0], S: hsb[1], B: hsb[2]}, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid light id %q: %w", s, err)
	}
	return id, nil
}

// sortedIDs orders bridge ids numerically where they are numbers.
func sortedIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

// onOff pads before styling so escape codes don't count toward the column.
func onOff(on bool, width int) string {
	if on {
		return onStyle.Render(fmt.Sprintf("%-*s", width, "on"))
	}
	return offStyle.Render(fmt.Sprintf("%-*s", width, "off"))
}

func printLights(out io.Writer, ls hue.Lights) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-4s %-24s %-5s %-5s %s", "ID", "NAME", "STATE", "BRI", "REACHABLE")))
	for _, id := range sortedIDs(lo.Keys(ls)) {
		l := ls[id]
		fmt.Fprintf(out, "%-4s %-24s %s %-5d %t\n", id, l.Name, onOff(l.State.On, 5), l.State.Bri, l.State.Reachable)
	}
}

func printGroups(out io.Writer, groups hue.Groups) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-4s %-24s %-8s %s", "ID", "NAME", "ANY ON", "LIGHTS")))
	for _, id := range sortedIDs(lo.Keys(groups)) {
		g := groups[id]
		fmt.Fprintf(out, "%-4s %-24s %s %s\n", id, g.Name, onOff(g.State.AnyOn, 8), strings.Join(g.Lights, ","))
	}
}

func printResponses(out io.Writer, ids []int, responses []*hue.Response) {
	for i, resp := range responses {
		if i >= len(ids) || resp == nil {
			break
		}
		fmt.Fprintf(out, "light %d: %s\n", ids[i], resp.Status)

		bridgeErrs, err := resp.Errors()
		if err != nil {
			continue
		}
		for _, be := range bridgeErrs {
			fmt.Fprintln(out, errorStyle.Render("  "+be.Error()))
		}
	}
}
