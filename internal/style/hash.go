package style

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Type tags of the canonical encoding.
const (
	tagNil    byte = 0x00
	tagString byte = 0x01
	tagBool   byte = 0x02
	tagInt    byte = 0x03
	tagFloat  byte = 0x04
	tagList   byte = 0x05
	tagMap    byte = 0x06
	tagFunc   byte = 0x07
	tagOther  byte = 0x08
)

// GenerateClassName returns a short deterministic identifier for styles.
//
// The identifier is derived from a canonical encoding: keys are sorted so
// insertion order never matters, and every value carries a type tag so 1
// and "1" hash differently.
func GenerateClassName(styles StyleMap) string {
	sum := sha256.Sum256(canonicalBytes(styles))
	return strconv.FormatUint(binary.BigEndian.Uint64(sum[:8]), 36)
}

// ClassName composes the class name of a rendered style map.
func ClassName(scope, selector string, base StyleMap) string {
	if selector == "" {
		selector = "default"
	}
	return scope + "-" + selector + "-" + GenerateClassName(base)
}

// canonicalBytes encodes styles in canonical form.
func canonicalBytes(styles StyleMap) []byte {
	var buf bytes.Buffer
	encodeMap(&buf, styles)
	return buf.Bytes()
}

// sameContent reports whether two property maps encode identically.
func sameContent(a, b StyleMap) bool {
	return bytes.Equal(canonicalBytes(a), canonicalBytes(b))
}

func encodeMap(buf *bytes.Buffer, m StyleMap) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte(tagMap)
	writeLen(buf, len(keys))
	for _, k := range keys {
		writeString(buf, k)
		encodeValue(buf, m[k])
	}
}

func encodeValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case nil:
		buf.WriteByte(tagNil)
		return
	case string:
		buf.WriteByte(tagString)
		writeString(buf, val)
		return
	case bool:
		buf.WriteByte(tagBool)
		if val {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
		return
	}

	if m, ok := asMap(v); ok {
		encodeMap(buf, m)
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteByte(tagInt)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(rv.Int()))
		buf.Write(b[:])
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteByte(tagInt)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], rv.Uint())
		buf.Write(b[:])
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// Integral floats share the integer encoding: YAML and JSON
		// decoders disagree on whether 10 is an int or a float.
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			buf.WriteByte(tagInt)
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(int64(f)))
			buf.Write(b[:])
			return
		}
		buf.WriteByte(tagFloat)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
		buf.Write(b[:])
	case reflect.Slice, reflect.Array:
		buf.WriteByte(tagList)
		writeLen(buf, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			encodeValue(buf, rv.Index(i).Interface())
		}
	case reflect.Func:
		// Functions are opaque; only their presence is content.
		buf.WriteByte(tagFunc)
	default:
		buf.WriteByte(tagOther)
		writeString(buf, fmt.Sprintf("%T:%v", v, v))
	}
}

func writeLen(buf *bytes.Buffer, n int) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	buf.Write(b[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeLen(buf, len(s))
	buf.WriteString(s)
}
