package shared

import (
	"github.com/spf13/pflag"
)

// HasFlags checks if any flags were set in the given flag set.
func HasFlags(flags *pflag.FlagSet) bool {
	return flags.NFlag() > 0
}
