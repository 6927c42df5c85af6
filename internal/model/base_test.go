package model

import (
	"reflect"
	"testing"
)

func TestStringArray_ScanUnquoted(t *testing.T) {
	var arr StringArray
	if err := arr.Scan("{Community Care,Office Admin}"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	want := StringArray{"Community Care", "Office Admin"}
	if !reflect.DeepEqual(arr, want) {
		t.Errorf("expected %v, got %v", want, arr)
	}
}

func TestStringArray_ScanQuotedWithComma(t *testing.T) {
	var arr StringArray
	if err := arr.Scan(`{"Care, Home",Office}`); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	want := StringArray{"Care, Home", "Office"}
	if !reflect.DeepEqual(arr, want) {
		t.Errorf("expected %v, got %v", want, arr)
	}
}

func TestStringArray_RoundTripSpecialCharacters(t *testing.T) {
	tests := []StringArray{
		{"Care, Home", "Office"},
		{`quote " inside`},
		{`back\slash`},
		{""},
		{},
	}
	for _, original := range tests {
		v, err := original.Value()
		if err != nil {
			t.Fatalf("Value failed for %v: %v", original, err)
		}
		var decoded StringArray
		if err := decoded.Scan(v); err != nil {
			t.Fatalf("Scan failed for %v: %v", v, err)
		}
		if !reflect.DeepEqual(decoded, original) {
			t.Errorf("round trip changed %v into %v", original, decoded)
		}
	}
}

func TestStringArray_ScanNilAndEmpty(t *testing.T) {
	var arr StringArray
	if err := arr.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if arr != nil {
		t.Errorf("expected nil array, got %v", arr)
	}

	if err := arr.Scan("{}"); err != nil {
		t.Fatalf("Scan({}) failed: %v", err)
	}
	if len(arr) != 0 || arr == nil {
		t.Errorf("expected empty non-nil array, got %v", arr)
	}
}

func TestStringArray_ScanMalformed(t *testing.T) {
	var arr StringArray
	if err := arr.Scan("not an array"); err == nil {
		t.Error("expected an error for a non-array literal")
	}
	if err := arr.Scan(42); err == nil {
		t.Error("expected an error for an unsupported source type")
	}
}
