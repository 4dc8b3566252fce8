package adaptable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

// ErrInvalidAMDFunction is returned when an AMDCall names a function that
// isn't a plain JavaScript identifier.
var ErrInvalidAMDFunction = errors.New("invalid AMD function name")

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// AMDCall is a call into a client-side AMD module, made once the module has
// been loaded with require. The host's JavaScript loader is expected to
// resolve Module.
type AMDCall struct {
	// Module is the AMD module name, e.g. "theme_adaptable/bsoptions".
	Module string

	// Function is the exported function to call on the module.
	Function string

	// Args are JSON-encoded and passed to Function in order.
	Args []any
}

// JS returns the JavaScript source for the call.
func (c AMDCall) JS() (template.JS, error) {
	if !jsIdentifier.MatchString(c.Function) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAMDFunction, c.Function)
	}
	module, err := json.Marshal(c.Module)
	if err != nil {
		return "", fmt.Errorf("error encoding module name %q: %w", c.Module, err)
	}
	args := make([]string, 0, len(c.Args))
	for pos, arg := range c.Args {
		encoded, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("error encoding argument %d for %s.%s: %w", pos, c.Module, c.Function, err)
		}
		args = append(args, string(encoded))
	}
	return template.JS(fmt.Sprintf("require([%s], function(amd) { amd.%s(%s); });", module, c.Function, strings.Join(args, ", "))), nil // #nosec G203
}

// AMDCaller is an interface that Components can fulfill to attach client-side
// module calls to the rendered page. They are made available to the template
// as .AMDCalls, and as ready-to-embed source in .Script.
type AMDCaller interface {
	// CallAMD returns the calls to make, in order.
	CallAMD(context.Context) []AMDCall
}

// AMDCalls returns every AMDCall attached by page and the Components it uses,
// de-duplicated, in the order they'll appear in the rendered output. Hosts
// with their own JavaScript pipeline can use it to register the calls
// themselves.
func AMDCalls(ctx context.Context, page Component) []AMDCall {
	return getComponentAMDCalls(ctx, page)
}

func getComponentAMDCalls(ctx context.Context, component Component) []AMDCall {
	var results []AMDCall
	seen := map[string]struct{}{}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		caller, ok := comp.(AMDCaller)
		if !ok {
			continue
		}
		for _, call := range caller.CallAMD(ctx) {
			key := call.Module + "." + call.Function + fmt.Sprint(call.Args)
			if _, ok := seen[key]; ok {
				continue
			}
			results = append(results, call)
			seen[key] = struct{}{}
		}
	}
	return results
}

func amdScript(calls []AMDCall) (template.JS, error) {
	var results []string
	for _, call := range calls {
		script, err := call.JS()
		if err != nil {
			return "", err
		}
		results = append(results, string(script))
	}
	return template.JS(strings.Join(results, "\n")), nil // #nosec G203
}
