// Package all imports all shell commands.
package all

import (
	_ "github.com/robotalks/mazebot/pkg/cli/cmds/maneuver"
	_ "github.com/robotalks/mazebot/pkg/cli/cmds/vision"
)
