package config

import (
	"errors"
	"fmt"
)

// RelayerMode selects the fee-management strategy of the relayer.
type RelayerMode int

const (
	AlwaysRelay RelayerMode = iota
	Api
	File
)

var ErrUnknownMode = errors.New("incorrect mode, possible values are: AlwaysRelay, Api or File")

var modeNames = map[RelayerMode]string{
	AlwaysRelay: "AlwaysRelay",
	Api:         "Api",
	File:        "File",
}

func (m RelayerMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RelayerMode(%d)", int(m))
}

// ParseRelayerMode parses one of the exact mode names.
func ParseRelayerMode(s string) (RelayerMode, error) {
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: got %q", ErrUnknownMode, s)
}
