// Package decode reads JSON documents into Results.
package decode

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
	"github.com/ib-77/outcome/pkg/rop/try"
)

// Document is an untyped JSON object.
type Document = map[string]any

// JSON decodes data into a T.
func JSON[T any](data []byte) rop.Of[T] {
	return try.Fn(func() (T, error) {
		var v T
		err := json.Unmarshal(data, &v)
		return v, err
	})
}

// Reader decodes the first JSON value read from r.
func Reader[T any](r io.Reader) rop.Of[T] {
	return try.Fn(func() (T, error) {
		var v T
		err := json.NewDecoder(r).Decode(&v)
		return v, err
	})
}

// File decodes the JSON document stored at path. Failures name the path.
func File[T any](path string) rop.Of[T] {
	data := try.Fn(func() ([]byte, error) {
		return os.ReadFile(path)
	})

	return solo.MapErr(solo.AndThen(data, JSON[T]), func(err error) error {
		return fmt.Errorf("decode %s: %w", path, err)
	})
}
