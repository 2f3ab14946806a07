// Package logging configures the process-wide logrus logger, grounded in
// the same verbose-flag / stderr / text-formatter setup the CLI driver
// pack uses: warnings-and-errors by default, debug level under -v, always
// to stderr so stdout stays reserved for verdict output.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Configure sets the standard logger's level and formatter. verbose
// selects DebugLevel over the default WarnLevel.
func Configure(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})
}
