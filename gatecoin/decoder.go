package gatecoin

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
)

// decoder reads the fields of one JSON object by wire name. Problems are appended to the
// shared error list and decoding carries on, so one pass reports every bad field.
type decoder struct {
	data []byte
	path string
	errs *FieldErrors
}

func newDecoder(data []byte) *decoder {
	d := &decoder{data: data, errs: &FieldErrors{}}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		d.errorf("$", "payload is not a JSON object")
		d.data = []byte("{}")
	}
	return d
}

func (d *decoder) child(data []byte, path string) *decoder {
	return &decoder{data: data, path: path, errs: d.errs}
}

func (d *decoder) field(key string) string {
	if d.path == "" {
		return key
	}
	return d.path + "." + key
}

func (d *decoder) errorf(path, format string, args ...interface{}) {
	*d.errs = append(*d.errs, FieldError{Field: path, Message: fmt.Sprintf(format, args...)})
}

func (d *decoder) failed() bool {
	return len(*d.errs) > 0
}

// lookup returns the raw value of key. Missing and null values are only an error when
// the field is required.
func (d *decoder) lookup(key string, required bool) ([]byte, jsonparser.ValueType, bool) {
	v, t, _, err := jsonparser.Get(d.data, key)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		d.errorf(d.field(key), "%s", err)
		return nil, t, false
	}
	if t == jsonparser.NotExist || t == jsonparser.Null {
		if required {
			d.errorf(d.field(key), "missing required field")
		}
		return nil, t, false
	}
	return v, t, true
}

func (d *decoder) String(key string, required bool) string {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return ""
	}
	if t != jsonparser.String {
		d.errorf(d.field(key), "not a valid string")
		return ""
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		d.errorf(d.field(key), "%s", err)
	}
	return s
}

// Int accepts a JSON number or a numeric string.
func (d *decoder) Int(key string, required bool) int64 {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return 0
	}
	i, err := parseInt(v, t)
	if err != nil {
		d.errorf(d.field(key), "not a valid integer")
	}
	return i
}

// Decimal accepts a JSON number or a numeric string.
func (d *decoder) Decimal(key string, required bool) decimal.Decimal {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return decimal.Zero
	}
	return d.decimalAt(d.field(key), v, t)
}

func (d *decoder) Bool(key string, required bool) bool {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return false
	}
	if t != jsonparser.Boolean {
		d.errorf(d.field(key), "not a valid boolean")
		return false
	}
	b, _ := jsonparser.ParseBoolean(v)
	return b
}

// Time reads Unix seconds, possibly fractional and usually sent as a string, as a UTC time.
func (d *decoder) Time(key string, required bool) time.Time {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return time.Time{}
	}
	ts, err := parseUnix(v, t)
	if err != nil {
		d.errorf(d.field(key), "not a valid unix timestamp: %q", v)
	}
	return ts
}

// Object decodes a nested object with load. It returns false when the field is absent or
// malformed.
func (d *decoder) Object(key string, required bool, load func(*decoder)) bool {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return false
	}
	if t != jsonparser.Object {
		d.errorf(d.field(key), "not an object")
		return false
	}
	load(d.child(v, d.field(key)))
	return true
}

// Array calls each for every element of the list under key.
func (d *decoder) Array(key string, required bool, each func(path string, value []byte, t jsonparser.ValueType)) {
	v, t, ok := d.lookup(key, required)
	if !ok {
		return
	}
	if t != jsonparser.Array {
		d.errorf(d.field(key), "not a list")
		return
	}
	i := 0
	_, err := jsonparser.ArrayEach(v, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		each(fmt.Sprintf("%s[%d]", d.field(key), i), value, dataType)
		i++
	})
	if err != nil {
		d.errorf(d.field(key), "%s", err)
	}
}

// Objects calls load for every object in the list under key.
func (d *decoder) Objects(key string, required bool, load func(*decoder)) {
	d.Array(key, required, func(path string, value []byte, t jsonparser.ValueType) {
		if t != jsonparser.Object {
			d.errorf(path, "not an object")
			return
		}
		load(d.child(value, path))
	})
}

func (d *decoder) decimalAt(path string, v []byte, t jsonparser.ValueType) decimal.Decimal {
	if t != jsonparser.Number && t != jsonparser.String {
		d.errorf(path, "not a valid number")
		return decimal.Zero
	}
	n, err := decimal.NewFromString(string(v))
	if err != nil {
		d.errorf(path, "not a valid number")
		return decimal.Zero
	}
	return n
}

func parseInt(v []byte, t jsonparser.ValueType) (int64, error) {
	switch t {
	case jsonparser.Number:
		return jsonparser.ParseInt(v)
	case jsonparser.String:
		return strconv.ParseInt(string(v), 10, 64)
	}
	return 0, fmt.Errorf("unexpected %s", t)
}

// accepted timestamps: 0001-01-01T00:00:00Z to 9999-12-31T23:59:59Z
const (
	minUnix = -62135596800
	maxUnix = 253402300799
)

func parseUnix(v []byte, t jsonparser.ValueType) (time.Time, error) {
	if t != jsonparser.Number && t != jsonparser.String {
		return time.Time{}, fmt.Errorf("unexpected %s", t)
	}
	sec, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return time.Time{}, err
	}
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < minUnix || sec > maxUnix {
		return time.Time{}, fmt.Errorf("out of range")
	}
	whole := math.Floor(sec)
	nsec := math.Round((sec - whole) * 1e9)
	return time.Unix(int64(whole), int64(nsec)).UTC(), nil
}
