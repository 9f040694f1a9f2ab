package conf

import (
	"code.cloudfoundry.org/bytefmt"
)

// StringSize is a size that is unmarshaled from a string.
type StringSize uint64

// MarshalYAML implements yaml.Marshaler.
func (s StringSize) MarshalYAML() (interface{}, error) {
	return bytefmt.ByteSize(uint64(s)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringSize) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in string
	if err := unmarshal(&in); err != nil {
		return err
	}

	v, err := bytefmt.ToBytes(in)
	if err != nil {
		return err
	}

	*s = StringSize(v)
	return nil
}
