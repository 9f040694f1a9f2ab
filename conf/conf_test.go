package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/poolqa/PngCheck/logger"
)

func writeTempFile(t *testing.T, byts []byte) string {
	fpath := filepath.Join(t.TempDir(), "pngcheck.yml")
	err := os.WriteFile(fpath, byts, 0o644)
	require.NoError(t, err)
	return fpath
}

func TestConfFromFile(t *testing.T) {
	fpath := writeTempFile(t, []byte("logLevel: debug\n"+
		"logDestinations: [stdout, file]\n"+
		"logFile: /tmp/out.log\n"+
		"maxFileSize: 64MB\n"+
		"strictMethods: yes\n"+
		"verifyWorkers: 4\n"+
		"previewBytes: 8\n"))

	conf, found, err := Load(fpath)
	require.NoError(t, err)
	require.True(t, found)

	require.Equal(t, &Conf{
		LogLevel:        LogLevel(logger.Debug),
		LogDestinations: LogDestinations{logger.DestinationStdout, logger.DestinationFile},
		LogFile:         "/tmp/out.log",
		MaxFileSize:     64 * 1024 * 1024,
		StrictMethods:   true,
		VerifyWorkers:   4,
		PreviewBytes:    8,
	}, conf)
}

func TestConfDefaults(t *testing.T) {
	conf, found, err := Load(filepath.Join(t.TempDir(), "nonexisting.yml"))
	require.NoError(t, err)
	require.False(t, found)

	require.Equal(t, LogLevel(logger.Info), conf.LogLevel)
	require.Equal(t, LogDestinations{logger.DestinationStdout}, conf.LogDestinations)
	require.Equal(t, StringSize(256*1024*1024), conf.MaxFileSize)
	require.False(t, conf.StrictMethods)
	require.Equal(t, 0, conf.VerifyWorkers)
	require.Equal(t, 20, conf.PreviewBytes)
}

func TestConfPartial(t *testing.T) {
	fpath := writeTempFile(t, []byte("verifyWorkers: 2\n"))

	conf, found, err := Load(fpath)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, conf.VerifyWorkers)
	require.Equal(t, 20, conf.PreviewBytes)
}

func TestConfErrors(t *testing.T) {
	for _, ca := range []struct {
		name string
		conf string
		err  string
	}{
		{
			"invalid log level",
			"logLevel: verbose\n",
			"invalid log level: 'verbose'",
		},
		{
			"invalid log destination",
			"logDestinations: [syslog]\n",
			"invalid log destination: syslog",
		},
		{
			"duplicate log destination",
			"logDestinations: [file, file]\n",
			"log destination set twice: file",
		},
		{
			"no log destination",
			"logDestinations: []\n",
			"at least one log destination must be set",
		},
		{
			"file without path",
			"logDestinations: [file]\nlogFile: ''\n",
			"'logFile' must be set when logging to a file",
		},
		{
			"negative workers",
			"verifyWorkers: -1\n",
			"'verifyWorkers' can't be negative",
		},
		{
			"negative preview",
			"previewBytes: -5\n",
			"'previewBytes' can't be negative",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			_, _, err := Load(writeTempFile(t, []byte(ca.conf)))
			require.EqualError(t, err, ca.err)
		})
	}
}

func TestConfInvalidValues(t *testing.T) {
	for _, ca := range []string{
		"unknownField: 1\n",
		"maxFileSize: 0B\n",
		"maxFileSize: lots\n",
		"verifyWorkers: many\n",
	} {
		_, _, err := Load(writeTempFile(t, []byte(ca)))
		require.Error(t, err, ca)
	}

	conf := &Conf{}
	conf.setDefaults()
	conf.MaxFileSize = 0
	require.EqualError(t, conf.Validate(), "'maxFileSize' must be greater than zero")
}

func TestConfMarshal(t *testing.T) {
	conf := &Conf{}
	conf.setDefaults()

	buf, err := yaml.Marshal(conf)
	require.NoError(t, err)
	require.Contains(t, string(buf), "logLevel: info\n")
	require.Contains(t, string(buf), "maxFileSize: 256M\n")
	require.Contains(t, string(buf), "- stdout\n")

	var dec Conf
	err = dec.Unmarshal(buf)
	require.NoError(t, err)
	require.Equal(t, conf, &dec)
}
