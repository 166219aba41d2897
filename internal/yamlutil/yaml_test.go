package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	data := []byte("name: webshot\ncount: 3\n")

	var s sample
	if err := Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if s.Name != "webshot" || s.Count != 3 {
		t.Errorf("Unmarshal() = %+v, want {webshot 3}", s)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &sample{}, wantErr: ErrNilData},
		{name: "empty data", data: []byte{}, dest: &sample{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: ErrNilDestination},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("a", MaxInputSize)),
			dest:    &sample{},
			wantErr: ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	data := []byte("name: webshot\nbogus: true\n")

	var s sample
	if err := UnmarshalStrict(data, &s); err == nil {
		t.Error("UnmarshalStrict() accepted unknown field")
	}
}

func TestUnmarshalLenientAcceptsUnknownFields(t *testing.T) {
	data := []byte("name: webshot\nbogus: true\n")

	var s sample
	if err := Unmarshal(data, &s); err != nil {
		t.Errorf("Unmarshal() rejected unknown field: %v", err)
	}
}

func TestUnmarshalInvalidYAML(t *testing.T) {
	var s sample
	err := Unmarshal([]byte("name: [unclosed"), &s)
	if err == nil {
		t.Error("Unmarshal() accepted malformed YAML")
	}
}
