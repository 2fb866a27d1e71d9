package config

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// VarSpec describes an environment variable the command reads.
type VarSpec struct {
	// Name is the environment variable name (e.g. "DATADOG_API_KEY").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Set applies the variable's value to the given Credentials. Optional
	// variables that are only documented in help text leave it nil.
	Set func(creds *Credentials, value string)
}

// Vars is the authoritative list of required environment variables.
var Vars = []VarSpec{
	{
		Name:        "DATADOG_API_KEY",
		Description: "Datadog API key",
		Set:         func(c *Credentials, v string) { c.APIKey = v },
	},
	{
		Name:        "DATADOG_APP_KEY",
		Description: "Datadog application key",
		Set:         func(c *Credentials, v string) { c.AppKey = v },
	},
}

// VarNames returns the names of all required variables.
func VarNames() []string {
	names := make([]string, len(Vars))
	for i, v := range Vars {
		names[i] = v.Name
	}
	return names
}

// VarsHelp renders the environment section of the command help: the
// required variables from Vars followed by any optional ones, aligned in two
// columns.
func VarsHelp(optional ...VarSpec) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "Environment:")
	for _, v := range Vars {
		fmt.Fprintf(w, "  %s\t%s (required)\n", v.Name, v.Description)
	}
	for _, v := range optional {
		fmt.Fprintf(w, "  %s\t%s\n", v.Name, v.Description)
	}
	w.Flush()

	b.WriteString("\nA required variable that is unset or blank stops the run before\nDatadog is contacted.\n")
	return b.String()
}
