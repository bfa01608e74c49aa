package terminal_test

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"

	"github.com/trickstertwo/xconsole"
	"github.com/trickstertwo/xconsole/adapter/terminal"
	"github.com/trickstertwo/xconsole/console"
)

var (
	_ console.StyledConsole = (*terminal.Console)(nil)

	ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

func TestConsole_PlainLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf})
	if c.Styled() {
		t.Fatal("a bytes.Buffer is not a terminal; colour must be off")
	}

	c.Info("INFO  app\nhello")
	c.Error("boom")

	want := "INFO  app\nhello\nboom\n"
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestConsole_StripsMarkersWithoutColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf, Color: terminal.ColorNever})
	c.Warn("%cWARN %c app::db%c\nslow query", "a", "b", "c")

	want := "WARN  app::db\nslow query\n"
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestConsole_StyledOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf, Color: terminal.ColorAlways})
	if !c.Styled() {
		t.Fatal("ColorAlways must report styled")
	}

	st := console.DefaultStyle()
	c.Error("%cERROR%c app::db%c\nboom", st.Error, st.Target, st.Args)

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", out)
	}
	redBg := color.New(color.FgHiWhite, color.BgRed)
	redBg.EnableColor()
	if !strings.HasPrefix(out, redBg.Sprint("ERROR")) {
		t.Fatalf("level tag not rendered white on red: %q", out)
	}
	if got := ansi.ReplaceAllString(out, ""); got != "ERROR app::db\nboom\n" {
		t.Fatalf("stripped output mismatch: %q", got)
	}
}

func TestConsole_LiteralMarkerInBodyKept(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf, Color: terminal.ColorAlways})
	c.Info("%cINFO %c t%c\n100%c done", "color: red", "", "")

	if got := ansi.ReplaceAllString(buf.String(), ""); got != "INFO  t\n100%c done\n" {
		t.Fatalf("output mismatch: %q", got)
	}
}

func TestConsole_WithAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := xconsole.NewDispatcher()
	console.InitWith(d, console.WithPrefix(xconsole.LevelInfo, "app::"), terminal.New(terminal.Options{Writer: &buf, Color: terminal.ColorAlways}))

	d.For("app::db").Debug("connecting")
	d.For("app::db").Warn("slow query")
	d.For("other::x").Error("boom")

	if got := ansi.ReplaceAllString(buf.String(), ""); got != "WARN  app::db\nslow query\n" {
		t.Fatalf("output mismatch: %q", got)
	}
}

func TestConsole_MarkerInTargetWrittenVerbatim(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := xconsole.NewDispatcher()
	console.InitWith(d, console.NewConfig(xconsole.LevelTrace), terminal.New(terminal.Options{Writer: &buf, Color: terminal.ColorAlways}))

	d.For("a%cb").Error("boom")

	if got := buf.String(); got != "ERROR a%cb\nboom\n" {
		t.Fatalf("output mismatch: %q", got)
	}
}

func TestConsole_ConcurrentWritesAreWholeLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Info("line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("expected 400 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l != "line" {
			t.Fatalf("torn line %q", l)
		}
	}
}

func TestConsole_Timestamps(t *testing.T) {
	// Freezes the process clock; not parallel.
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 9, 30, 15, 250_000_000, time.UTC)
	xclock.SetDefault(frozen.New(ft))

	var buf bytes.Buffer
	c := terminal.New(terminal.Options{Writer: &buf, Timestamps: true})
	c.Log("TRACE t\nm")

	want := "09:30:15.250 TRACE t\nm\n"
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", got, want)
	}
}
