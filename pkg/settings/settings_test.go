package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := Run{MinLogLevel: 0, DefaultType: "string"}
	if *got != want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestNewCliParamsReturnsFreshValue(t *testing.T) {
	a := NewCliParams()
	a.DryRun = true
	if b := NewCliParams(); b.DryRun {
		t.Error("NewCliParams should not share state between calls")
	}
}
