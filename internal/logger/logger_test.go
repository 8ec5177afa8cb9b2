package logger

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
	now = time.Now
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(true)
	Debug("on")
	SetVerbose(false)
	Debug("off")

	assert.Equal(t, "[DEBUG] on\n", buf.String())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("loaded %d rows from %s", 12, "first")

	assert.Equal(t, "[DEBUG] loaded 12 rows from first\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Section("Load")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Clean")

	assert.Equal(t, "\n=== Clean ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)

	assert.Equal(t, "[INFO] info message 42\n", buf.String())
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("year %s already present", "2015")

	assert.Equal(t, "[WARN] year 2015 already present\n", buf.String())
}

func TestStage(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}

	done := Stage("Align")
	done()

	assert.Equal(t, "\n=== Align ===\n[DEBUG] Align took 1.5s\n", buf.String())
}

func TestStage_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Stage("Align")()

	assert.Zero(t, buf.Len())
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		i := i
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
