package kvs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(RetCDecodeError, "invalid length")
	want := "KVSError (code DecodeError): invalid length"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	ioErr := NewIOError(fs.ErrPermission, "/var/lib/app")
	want = "KVSError (code IOError): permission denied: /var/lib/app"
	if ioErr.Error() != want {
		t.Errorf("Expected %q, got %q", want, ioErr.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := NewIOError(fs.ErrNotExist, "/some/path")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected the wrapped cause to be reachable via errors.Is")
	}
	if NewError(RetCNoUserScope, "no HOME").Unwrap() != nil {
		t.Errorf("Expected nil cause for errors without one")
	}
}

func TestRetCodeStrings(t *testing.T) {
	cases := map[RetCode]string{
		RetCSuccess:        "Success",
		RetCIOError:        "IOError",
		RetCDecodeError:    "DecodeError",
		RetCNoUserScope:    "NoUserScope",
		RetCNoMachineScope: "NoMachineScope",
		RetCInvalidKey:     "InvalidKey",
		RetCode(99):        "Unknown",
	}
	for code, want := range cases {
		if code.String() != want {
			t.Errorf("RetCode(%d).String() = %q, expected %q", code, code.String(), want)
		}
	}
}

func TestIdentityValidate(t *testing.T) {
	valid := []Identity{
		{Namespace: "com.example", Application: "demo"},
		{Namespace: "zep", Application: "kvs-test"},
	}
	for _, id := range valid {
		if err := id.Validate(); err != nil {
			t.Errorf("Expected %+v to be valid, got %v", id, err)
		}
	}

	invalid := []Identity{
		{},
		{Namespace: "ns"},
		{Application: "app"},
		{Namespace: ".", Application: "app"},
		{Namespace: "ns", Application: ".."},
		{Namespace: "a/b", Application: "app"},
		{Namespace: "ns", Application: "a\\b"},
		{Namespace: "n\x00s", Application: "app"},
	}
	for _, id := range invalid {
		if err := id.Validate(); err == nil {
			t.Errorf("Expected %+v to be rejected", id)
		}
	}
}
