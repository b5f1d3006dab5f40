package proc

import (
	"os"
	"testing"
)

func TestNameOfCurrentProcess(t *testing.T) {
	name := Name(uint32(os.Getpid()))
	if name == "" {
		t.Fatalf("expected a name for the current process")
	}
}

func TestNameOfZeroPID(t *testing.T) {
	if name := Name(0); name != "" {
		t.Fatalf("expected empty name for pid 0, got %q", name)
	}
}

func TestNameOfDeadProcessIsEmpty(t *testing.T) {
	// PIDs wrap far below this on every supported platform.
	if name := Name(4294967290); name != "" {
		t.Fatalf("expected empty name for nonexistent pid, got %q", name)
	}
}
