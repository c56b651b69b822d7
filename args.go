package digit

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/digit/pkg/geom"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/mitchellh/mapstructure"
)

var pointType = reflect.TypeOf(geom.Point2D{})

// decodeArgs fills target from args. Decoding is weakly typed so that CLI
// strings ("3.5", "NaN", "1,2,3") and JSON numbers both work; unknown keys are
// rejected.
func decodeArgs(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToPointHook,
			stringToNumbersHook,
		),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", plugin.ErrInvalidArguments, err)
	}
	return nil
}

// stringToPointHook accepts "x,y" wherever a geom.Point2D is expected.
func stringToPointHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != pointType {
		return data, nil
	}
	return ParsePoint(data.(string))
}

// stringToNumbersHook splits "1,2,3" into elements that weak decoding then
// parses one by one.
func stringToNumbersHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" {
		return []string{}, nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ParsePoint parses the "x,y" shorthand for a point.
func ParsePoint(s string) (geom.Point2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point2D{}, fmt.Errorf("point %q: expected \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point2D{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point2D{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Point2D{X: x, Y: y}, nil
}
