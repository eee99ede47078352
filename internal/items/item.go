package items

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
)

// Item is a row of the items table.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewItem is the request body for creating an item. Value is validated but not
// persisted; the table has no column for it.
type NewItem struct {
	Name  string
	Value float64
}

// fieldTypes names the JSON type each body field must have.
var fieldTypes = map[string]string{"name": "string", "value": "number"}

type newItemBody struct {
	Name  *string  `json:"name"`
	Value *float64 `json:"value"`
}

// DecodeNewItem parses and validates a JSON request body. Every failure is a
// validation error so the caller can answer with a 4xx without touching the store.
func DecodeNewItem(r io.Reader) (NewItem, error) {
	var body newItemBody
	dec := json.NewDecoder(r)
	if err := dec.Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return NewItem{}, ferrors.ValidationError("body: expected object").
				WithContext("got", typeErr.Value).
				Build()
		}
		if errors.As(err, &typeErr) {
			return NewItem{}, ferrors.ValidationError(fmt.Sprintf("%s: expected %s", typeErr.Field, fieldTypes[typeErr.Field])).
				WithContext("field", typeErr.Field).
				Build()
		}
		return NewItem{}, ferrors.ValidationError("body: invalid JSON").
			WithContext("cause", err.Error()).
			Build()
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return NewItem{}, ferrors.ValidationError("body: unexpected data after object").Build()
	}

	switch {
	case body.Name == nil:
		return NewItem{}, missing("name")
	case body.Value == nil:
		return NewItem{}, missing("value")
	}
	return NewItem{Name: *body.Name, Value: *body.Value}, nil
}

func missing(field string) error {
	return ferrors.ValidationError(field+": field required").
		WithContext("field", field).
		Build()
}
