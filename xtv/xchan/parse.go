package xchan

import (
	"regexp"
	"strconv"
	"strings"
)

type (
	// Identifier is the parsed form of a channel string such as
	// "rftn-140A03R05": a variable name, a component id, and the optional
	// axial/radial/theta mesh index groups. Absent groups stay zero.
	Identifier struct {
		VarName     string
		ComponentID int32
		Axial       int32
		Radial      int32
		Theta       int32
	}
)

// meshPattern matches the trailing token of a channel identifier: a numeric
// component id, then optional axial/radial/theta groups of two or more
// digits, each gated on the previous group being present.
var meshPattern = regexp.MustCompile(`^(?P<id>\d+)(?:A(?P<axial>\d\d+)(?:R(?P<radial>\d\d+)(?:T(?P<theta>\d\d+))?)?)?`)

// Parse splits a channel identifier on its last hyphen and decodes the
// trailing id-and-mesh token. Splitting on the last hyphen tolerates hyphens
// inside variable names. An identifier whose token does not match the grammar
// is not an error: the whole string becomes the variable name with component
// id zero.
func Parse(channel string) Identifier {
	varName, token := splitLast(channel)
	match := meshPattern.FindStringSubmatch(token)
	if match == nil {
		return Fallback(channel)
	}
	return Identifier{
		VarName:     varName,
		ComponentID: parseGroup(match[1]),
		Axial:       parseGroup(match[2]),
		Radial:      parseGroup(match[3]),
		Theta:       parseGroup(match[4]),
	}
}

// Fallback is the degenerate resolution of an identifier that cannot be
// matched to any channel: the whole string is the variable name, everything
// else zero.
func Fallback(channel string) Identifier {
	return Identifier{VarName: channel}
}

func splitLast(channel string) (string, string) {
	index := strings.LastIndex(channel, "-")
	if index < 0 {
		return "", channel
	}
	return channel[:index], channel[index+1:]
}

func parseGroup(group string) int32 {
	if group == "" {
		return 0
	}
	value, err := strconv.ParseInt(group, 10, 32)
	if err != nil {
		return 0
	}
	return int32(value)
}
