package main

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/lueurxax/singlell/internal/singlell"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render prints the list in the requested format. Structured formats drain the list.
func render[T any](list singlell.List[T], format string) (string, error) {
	switch format {
	case formatText:
		return list.String(), nil
	case formatJSON:
		return jsoniter.MarshalToString(drain(list))
	case formatYAML:
		data, err := yaml.Marshal(drain(list))
		if err != nil {
			return "", err
		}

		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func drain[T any](list singlell.List[T]) []T {
	values := make([]T, 0, list.Len())
	for v, ok := list.PopFront(); ok; v, ok = list.PopFront() {
		values = append(values, v)
	}

	return values
}
