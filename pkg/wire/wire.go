// Package wire encodes event payloads as length-prefixed blobs: a 4-byte
// little-endian length followed by the JSON body of the domain value.
package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// Encode serializes a value into a length-prefixed payload.
func Encode(v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	return out, nil
}

// MustEncode is Encode for values that cannot fail to marshal (the domain
// types). It panics on error.
func MustEncode(v interface{}) []byte {
	out, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Decode deserializes a length-prefixed payload into v.
func Decode(payload []byte, v interface{}) error {
	if len(payload) < 4 {
		return fmt.Errorf("payload too short: %d bytes", len(payload))
	}
	length := binary.LittleEndian.Uint32(payload)
	body := payload[4:]
	if int(length) != len(body) {
		return fmt.Errorf("payload length mismatch: header %d, body %d", length, len(body))
	}
	return json.Unmarshal(body, v)
}
