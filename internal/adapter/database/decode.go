package database

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/heartmarshall/callsign-backend/internal/domain"
)

// Decode maps a result row onto T using `db` struct tags.
func Decode[T any](row Row) (T, error) {
	var out T

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "db",
		Result:     &out,
		DecodeHook: bytesToString,
	})
	if err != nil {
		return out, fmt.Errorf("decode: new decoder: %w", err)
	}
	if err := dec.Decode(row); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}

// DecodeAll maps every row of res onto T.
func DecodeAll[T any](res *Result) ([]T, error) {
	out := make([]T, 0, len(res.Rows))
	for _, row := range res.Rows {
		v, err := Decode[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// First decodes the first row of res. Returns domain.ErrNotFound when res has
// no rows.
func First[T any](res *Result) (T, error) {
	if res == nil || len(res.Rows) == 0 {
		var zero T
		return zero, domain.ErrNotFound
	}
	return Decode[T](res.Rows[0])
}

// bytesToString lets TEXT columns that arrive as []byte land in string fields.
func bytesToString(from, to reflect.Type, data any) (any, error) {
	if b, ok := data.([]byte); ok && to.Kind() == reflect.String {
		return string(b), nil
	}
	return data, nil
}
