package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Output flags
	Format string `flag:"format,f" desc:"Output format" default:"table"`
	Output string `flag:"output,o" desc:"Write to file instead of stdout" default:""`
}

// AddStandardFlags adds standard flags to a command. formats lists the
// accepted --format values, the first being the default.
func AddStandardFlags(cmd *cobra.Command, formats ...string) *StandardFlags {
	flags := &StandardFlags{}

	if len(formats) > 0 {
		cmd.Flags().StringVarP(&flags.Format, "format", "f", formats[0],
			fmt.Sprintf("Output format (%s)", strings.Join(formats, "|")))
		AddFlagValidation(cmd.Flags(), "format", func(format string) error {
			return ValidateFormatWithSuggestion(format, formats)
		})
	}
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write to file instead of stdout")

	return flags
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	// Store original value setter
	originalSet := flag.Value.Set

	// Create wrapper that validates
	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// ValidateFormatWithSuggestion accepts format if it is one of valid and
// otherwise names the closest valid format.
func ValidateFormatWithSuggestion(format string, valid []string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}

	msg := fmt.Sprintf("invalid format %q, must be one of: %s", format, strings.Join(valid, ", "))
	if suggestion := closest(strings.ToLower(format), valid); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return fmt.Errorf("%s", msg)
}

// closest returns the candidate within edit distance 2 of s, if any.
func closest(s string, candidates []string) string {
	best, bestDistance := "", 3
	for _, candidate := range candidates {
		if d := editDistance(s, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
