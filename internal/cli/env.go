package cli

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
)

// envPrefix prefixes the environment variable of every flag.
const envPrefix = "TESTSPEC_"

// envName returns the variable for a flag: "header-bg-color" becomes
// TESTSPEC_HEADER_BG_COLOR.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv sets every flag that was not given on the command line from its
// environment variable, if present.
func applyEnv(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if setErr := fs.Set(f.Name, v); setErr != nil {
			err = sterrors.Wrap(sterrors.ErrCodeInvalidInput, setErr, "%s", envName(f.Name))
		}
	})
	return err
}
