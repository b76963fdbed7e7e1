package hue

import (
	"fmt"

	"github.com/wheelibin/hapi/internal/constants"
)

func LightsPath() string {
	return fmt.Sprintf("/%s/", constants.LightsResource)
}

func LightPath(id int) string {
	return fmt.Sprintf("/%s/%d/", constants.LightsResource, id)
}

func LightStatePath(id int) string {
	return fmt.Sprintf("/%s/%d/%s", constants.LightsResource, id, constants.StateResource)
}

func GroupsPath() string {
	return fmt.Sprintf("/%s/", constants.GroupsResource)
}

func GroupPath(id int) string {
	return fmt.Sprintf("/%s/%d/", constants.GroupsResource, id)
}
