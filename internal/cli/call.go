package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/geom"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/registry"
	"github.com/aretw0/digit/pkg/wire"
)

// CallOptions configures Call.
type CallOptions struct {
	// Target is an operation name, optionally qualified as "Plugin.operation".
	// Unqualified names address the Digit plugin.
	Target string
	Args   []string
	JSON   bool
}

// Call invokes one operation on h and writes its result to w.
func Call(ctx context.Context, h *host.Host, w io.Writer, opts CallOptions) error {
	pluginID, op := SplitTarget(opts.Target)
	args, err := ParseArgs(opts.Args)
	if err != nil {
		return err
	}

	result, err := h.Invoke(ctx, pluginID, op, args)
	if err != nil {
		return err
	}

	if opts.JSON {
		return wire.Encode(w, map[string]any{
			"plugin":    pluginID,
			"operation": op,
			"result":    result,
		})
	}
	_, err = fmt.Fprintln(w, FormatResult(result))
	return err
}

// SplitTarget separates "Plugin.operation" into its parts. A bare operation
// name belongs to the Digit plugin.
func SplitTarget(target string) (pluginID, op string) {
	if i := strings.LastIndex(target, registry.Separator); i > 0 {
		return target[:i], target[i+len(registry.Separator):]
	}
	return digit.ID, target
}

// FormatResult renders a result for a terminal. Points use the same "x,y"
// shorthand the argument parser accepts.
func FormatResult(v any) string {
	switch x := v.(type) {
	case float64:
		return formatFloat(x)
	case bool:
		return strconv.FormatBool(x)
	case geom.Point2D:
		return formatFloat(x.X) + "," + formatFloat(x.Y)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
