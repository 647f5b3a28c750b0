package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON encodes v as compact JSON. Numbers keep their full decimal
// representation and object keys keep their order.
func JSON(v Value) ([]byte, error) {
	var b bytes.Buffer
	if err := encodeJSON(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeJSON(b *bytes.Buffer, v Value) error {
	switch x := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Bool:
		b.WriteString(x.String())
	case Num:
		b.WriteString(x.String())
	case Str:
		s, err := json.Marshal(string(x))
		if err != nil {
			return err
		}
		b.Write(s)
	case Arr:
		b.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := encodeJSON(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *Obj:
		b.WriteByte('{')
		var err error
		first := true
		x.Each(func(k string, item Value) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			key, _ := json.Marshal(k)
			b.Write(key)
			b.WriteByte(':')
			err = encodeJSON(b, item)
			return err == nil
		})
		if err != nil {
			return err
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("value: cannot encode %T as JSON", v)
	}
	return nil
}

// ParseJSON decodes a JSON document. Numbers are parsed as decimals, so no
// precision is lost; object keys are sorted.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x interface{}
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("value: trailing data after JSON document")
	}
	return FromAny(x)
}
