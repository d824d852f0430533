package wire

import (
	"encoding/binary"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	encoded, err := Encode(payload{Name: "stitches", Count: 4})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(encoded); int(got) != len(encoded)-4 {
		t.Errorf("length prefix = %d, body = %d", got, len(encoded)-4)
	}

	var decoded payload
	if err := Decode(encoded, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Name != "stitches" || decoded.Count != 4 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestDecode_RejectsShortPayloads(t *testing.T) {
	var v interface{}
	if err := Decode([]byte{1, 2}, &v); err == nil {
		t.Error("short payload should fail")
	}
}

func TestDecode_RejectsLengthMismatch(t *testing.T) {
	var v interface{}
	if err := Decode([]byte{9, 0, 0, 0, '{', '}'}, &v); err == nil {
		t.Error("mismatched length should fail")
	}
}
