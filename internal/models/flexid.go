package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexID is a numeric product identifier that decodes whether the stored
// value is a number or a numeric string. Ids are minted as millisecond
// timestamps, but documents written through the file store and documents
// written through MongoDB have drifted between the two encodings.
type FlexID int64

func (f FlexID) Int64() int64 { return int64(f) }

// MarshalJSON always emits a number, keeping new writes consistent even
// when legacy records used a string value.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

func (f *FlexID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := unquoteJSON(raw, &s); err != nil {
			return err
		}
		return f.parse(s)
	}
	return f.parse(string(raw))
}

func (f *FlexID) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexID(n)
		return nil
	}
	// Some writers serialized the timestamp as a float.
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot decode %q into FlexID", s)
	}
	*f = FlexID(int64(n))
	return nil
}

func unquoteJSON(raw []byte, out *string) error {
	s, err := strconv.Unquote(string(raw))
	if err != nil {
		return fmt.Errorf("invalid FlexID string: %s", raw)
	}
	*out = s
	return nil
}

// UnmarshalBSONValue accepts numeric and string BSON types, allowing legacy
// documents to be decoded without failing the entire request.
func (f *FlexID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*f = 0
		return nil
	case bsontype.Int32:
		var v int32
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	case bsontype.Int64:
		var v int64
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	case bsontype.Double:
		var v float64
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*f = FlexID(int64(v))
		return nil
	case bsontype.String:
		var v string
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		return f.parse(v)
	default:
		return fmt.Errorf("cannot decode %s into FlexID", t)
	}
}

// MarshalBSONValue always stores the id as an int64.
func (f FlexID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int64(f))
}
