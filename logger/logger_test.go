package logger

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Noop(t *testing.T) {
	l := &Noop{}

	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
}

func Test_StdOut(t *testing.T) {
	var result []string
	l := &stdOut{func(msg string) {
		result = append(result, msg)
	}}

	x := struct {
		testField string
	}{"test-field"}
	err := io.ErrClosedPipe

	l.Debugf("dispatching %d items, %v", 3, x)
	l.Infof("run finished after %d ticks", 20)
	l.Warnf("no free slot, %d items due", 5)
	l.Errorf("batch of %d failed: %v", 2, err)
	l.Errorf("empty args")
	l.Errorf("more args: %s, %s", "one")
	l.Errorf("less args: %s", "one", "two")

	assert.Equal(t, 7, len(result))
	assert.Equal(t, "[DEBUG] dispatching 3 items, {test-field}", result[0])
	assert.Equal(t, "[INFO] run finished after 20 ticks", result[1])
	assert.Equal(t, "[WARN] no free slot, 5 items due", result[2])
	assert.Equal(t, "[ERROR] batch of 2 failed: io: read/write on closed pipe", result[3])
	assert.Equal(t, "[ERROR] empty args", result[4])
	assert.Equal(t, "[ERROR] more args: one, %!s(MISSING)", result[5])
	assert.Equal(t, "[ERROR] less args: one%!(EXTRA string=two)", result[6])
}
