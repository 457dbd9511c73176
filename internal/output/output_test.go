package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		p.Println("/tmp/wt/proj-x")
		if got := buf.String(); got != "/tmp/wt/proj-x\n" {
			t.Errorf("output = %q, want the line in the buffer passed to WithPrinter", got)
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.w != os.Stdout {
			t.Error("printer should default to os.Stdout")
		}
	})
}

func TestPrinter_Writes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Print("a", "b")
	p.Print(" n=", 3)
	p.Println()
	p.Println("/tmp/wt/proj-x")

	want := "ab n=3\n/tmp/wt/proj-x\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_IsTerminal(t *testing.T) {
	t.Parallel()

	if New(&bytes.Buffer{}).IsTerminal() {
		t.Error("IsTerminal() = true for a buffer")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if New(f).IsTerminal() {
		t.Error("IsTerminal() = true for a regular file")
	}
}
