package app

import (
	"reflect"
	"testing"

	"github.com/kk-code-lab/manlink/internal/manref"
)

func TestManJumpArgs(t *testing.T) {
	ref, err := manref.Parse("mount(2)")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	args := manJumpArgs("/usr/local/bin/manlink", ref)
	want := []string{"-P", "/usr/local/bin/manlink --subsequent-run", "2", "mount"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Expected %v, got %v", want, args)
	}
}

func TestManJumpArgsMultiCharSection(t *testing.T) {
	ref, err := manref.Parse("printf(3p)")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	args := manJumpArgs("/bin/manlink", ref)
	if args[2] != "3" || args[3] != "printf" {
		t.Errorf("Expected section 3 and name printf, got %v", args)
	}
}
