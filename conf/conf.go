// Package conf contains the struct that holds the configuration of the software.
package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/poolqa/PngCheck/logger"
)

// Conf is a configuration.
type Conf struct {
	// General
	LogLevel        LogLevel        `yaml:"logLevel"`
	LogDestinations LogDestinations `yaml:"logDestinations"`
	LogFile         string          `yaml:"logFile"`

	// Input
	MaxFileSize StringSize `yaml:"maxFileSize"`

	// Decoding
	StrictMethods bool `yaml:"strictMethods"`
	VerifyWorkers int  `yaml:"verifyWorkers"`

	// Output
	PreviewBytes int `yaml:"previewBytes"`
}

func (conf *Conf) setDefaults() {
	conf.LogLevel = LogLevel(logger.Info)
	conf.LogDestinations = LogDestinations{logger.DestinationStdout}
	conf.LogFile = "pngcheck.log"
	conf.MaxFileSize = 256 * 1024 * 1024
	conf.PreviewBytes = 20
}

// Load loads a Conf. found is false when the file does not exist,
// in which case the default configuration is returned.
func Load(fpath string) (*Conf, bool, error) {
	conf := &Conf{}
	conf.setDefaults()

	buf, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, false, nil
		}
		return nil, false, err
	}

	err = conf.Unmarshal(buf)
	if err != nil {
		return nil, true, err
	}

	return conf, true, nil
}

// Unmarshal decodes a YAML document on top of the current values and validates the result.
func (conf *Conf) Unmarshal(buf []byte) error {
	err := yaml.UnmarshalStrict(buf, conf)
	if err != nil {
		return err
	}
	return conf.Validate()
}

// Validate checks the configuration for errors.
func (conf *Conf) Validate() error {
	if len(conf.LogDestinations) == 0 {
		return fmt.Errorf("at least one log destination must be set")
	}
	for _, d := range conf.LogDestinations {
		if d == logger.DestinationFile && conf.LogFile == "" {
			return fmt.Errorf("'logFile' must be set when logging to a file")
		}
	}
	if conf.MaxFileSize == 0 {
		return fmt.Errorf("'maxFileSize' must be greater than zero")
	}
	if conf.VerifyWorkers < 0 {
		return fmt.Errorf("'verifyWorkers' can't be negative")
	}
	if conf.PreviewBytes < 0 {
		return fmt.Errorf("'previewBytes' can't be negative")
	}
	return nil
}
