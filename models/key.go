package models

import (
	"bytes"
	"classical-cipher-backend/crypto"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrKeyType is returned when a key cannot be converted to what a cipher expects.
var ErrKeyType = errors.New("wrong key type")

// DecodeKey turns the raw JSON key into a crypto.Key of the requested kind.
func DecodeKey(kind crypto.KeyKind, raw json.RawMessage) (crypto.Key, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return crypto.Key{}, fmt.Errorf("%w: %v", ErrKeyType, err)
	}
	return CoerceKey(kind, value)
}

// CoerceKey converts a loosely typed key. Integer keys accept integral numbers
// and decimal strings; string keys accept strings and numbers.
func CoerceKey(kind crypto.KeyKind, value any) (crypto.Key, error) {
	switch value.(type) {
	case nil:
		return crypto.Key{}, fmt.Errorf("%w: key must not be null", ErrKeyType)
	case bool, []any, map[string]any:
		return crypto.Key{}, fmt.Errorf("%w: key must be a %s, got %T", ErrKeyType, kind, value)
	}

	switch kind {
	case crypto.IntKind:
		n, err := toInt(value)
		if err != nil {
			return crypto.Key{}, fmt.Errorf("%w: key must be an integer: %v", ErrKeyType, err)
		}
		return crypto.IntKey(n), nil
	case crypto.StringKind:
		if n, ok := value.(json.Number); ok {
			return crypto.StringKey(n.String()), nil
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return crypto.Key{}, fmt.Errorf("%w: %v", ErrKeyType, err)
		}
		return crypto.StringKey(s), nil
	default:
		return crypto.Key{}, fmt.Errorf("%w: unknown key kind %s", ErrKeyType, kind)
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case json.Number:
		return strconv.Atoi(v.String())
	default:
		return cast.ToIntE(v)
	}
}
