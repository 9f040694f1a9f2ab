package conf

import (
	"fmt"

	"github.com/poolqa/PngCheck/logger"
)

// LogDestinations is the logDestinations parameter.
type LogDestinations []logger.Destination

// MarshalYAML implements yaml.Marshaler.
func (d LogDestinations) MarshalYAML() (interface{}, error) {
	out := make([]string, len(d))

	for i, v := range d {
		switch v {
		case logger.DestinationStdout:
			out[i] = "stdout"
		case logger.DestinationFile:
			out[i] = "file"
		}
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *LogDestinations) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in []string
	if err := unmarshal(&in); err != nil {
		return err
	}

	*d = nil

	for _, dest := range in {
		var v logger.Destination
		switch dest {
		case "stdout":
			v = logger.DestinationStdout

		case "file":
			v = logger.DestinationFile

		default:
			return fmt.Errorf("invalid log destination: %s", dest)
		}

		for _, prev := range *d {
			if prev == v {
				return fmt.Errorf("log destination set twice: %s", dest)
			}
		}
		*d = append(*d, v)
	}

	return nil
}
