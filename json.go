package compressed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Azizi-X/compressed/debug"
	"github.com/buger/jsonparser"
)

var (
	IgnoreInvalidPairTypes = true
	Logger                 = debug.NewLogger()
)

var (
	ErrNotArray     = errors.New("pair: expected a JSON array")
	ErrArity        = errors.New("pair: expected exactly two elements")
	ErrTrailingData = errors.New("pair: unexpected data after array")
)

// MarshalJSON encodes the pair as [first, second].
func (p Pair[F, S]) MarshalJSON() ([]byte, error) {
	first, second := p.Values()
	return json.Marshal([2]any{first, second})
}

// UnmarshalJSON decodes [first, second]. Each element is decoded into a fresh
// value and the pair is only written once both succeed. A null element keeps
// the half it replaces.
func (p *Pair[F, S]) UnmarshalJSON(data []byte) error {
	if p == nil {
		return nil
	}

	_, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return fmt.Errorf("pair: %w", err)
	}

	if dataType != jsonparser.Array {
		return fmt.Errorf("%w, got %v", ErrNotArray, dataType)
	}

	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return fmt.Errorf("%w: %q", ErrTrailingData, rest)
	}

	var elements []element

	if _, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if dataType == jsonparser.String {
			value = quote(value)
		}
		elements = append(elements, element{value: value, null: dataType == jsonparser.Null})
	}); err != nil {
		return fmt.Errorf("pair: %w", err)
	}

	if len(elements) != 2 {
		return fmt.Errorf("%w, got %d", ErrArity, len(elements))
	}

	first, second := p.Values()

	err = decodeElement(elements[0], &first)
	if err == nil {
		err = decodeElement(elements[1], &second)
	}

	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && IgnoreInvalidPairTypes {
			Logger.Verbose("[PAIR] Ignoring invalid: %v", err)
			return nil
		}

		return fmt.Errorf("pair: %w", err)
	}

	*p = NewPair(first, second)
	return nil
}

type element struct {
	value []byte
	null  bool
}

// decodeElement replaces *target only when elem decodes cleanly, so maps,
// slices and pointers held by the pair are never merged into.
func decodeElement[T any](elem element, target *T) error {
	if elem.null {
		return nil
	}

	var fresh T
	if err := json.Unmarshal(elem.value, &fresh); err != nil {
		return err
	}

	*target = fresh
	return nil
}

// jsonparser hands back string contents without their quotes; the escapes
// are kept, so wrapping them again yields valid JSON.
func quote(value []byte) []byte {
	quoted := make([]byte, 0, len(value)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, value...)
	return append(quoted, '"')
}
