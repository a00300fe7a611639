package logger

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

type logLine struct {
	level   logrus.Level
	obj     string
	msg     string
	flushed chan struct{}
}

const (
	logSize  = 1000
	objWidth = 20
)

var (
	logCh     = make(chan logLine, logSize)
	drainOnce sync.Once
)

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		t := reflect.TypeOf(obj)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		objStr = t.Name()
	}
	if len(objStr) > objWidth {
		objStr = objStr[:objWidth]
	}
	return
}

// Init sets the level and formatter of the standard logrus logger. A nil out keeps the
// current output.
func Init(lvl logrus.Level, out io.Writer) {
	logrus.SetLevel(lvl)
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     out == nil,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	drainOnce.Do(startDrain)
}

// ParseLevel wraps logrus.ParseLevel with an info fallback.
func ParseLevel(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func startDrain() {
	go func() {
		for line := range logCh {
			if line.flushed != nil {
				close(line.flushed)
				continue
			}
			logrus.StandardLogger().Logf(line.level, "|%20s| %s", line.obj, line.msg)
		}
	}()
}

// Flush blocks until every line queued before the call is written.
func Flush() {
	drainOnce.Do(startDrain)
	done := make(chan struct{})
	logCh <- logLine{flushed: done}
	<-done
}

func send(lvl logrus.Level, object any, msg string) {
	if !logrus.IsLevelEnabled(lvl) {
		return
	}
	drainOnce.Do(startDrain)
	logCh <- logLine{level: lvl, obj: objToString(object), msg: msg}
}

func Trace(object any, message string) {
	send(logrus.TraceLevel, object, message)
}

func Tracef(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		send(logrus.TraceLevel, object, fmt.Sprintf(message, args...))
	}
}

func Debug(object any, message string) {
	send(logrus.DebugLevel, object, message)
}

func Debugf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		send(logrus.DebugLevel, object, fmt.Sprintf(message, args...))
	}
}

func Info(object any, message string) {
	send(logrus.InfoLevel, object, message)
}

func Infof(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		send(logrus.InfoLevel, object, fmt.Sprintf(message, args...))
	}
}

func Warning(object any, message string) {
	send(logrus.WarnLevel, object, message)
}

func Warningf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.WarnLevel) {
		send(logrus.WarnLevel, object, fmt.Sprintf(message, args...))
	}
}

func Error(object any, message string) {
	send(logrus.ErrorLevel, object, message)
}

func Errorf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.ErrorLevel) {
		send(logrus.ErrorLevel, object, fmt.Sprintf(message, args...))
	}
}

// Fatal writes the queued lines, then the message, and exits.
func Fatal(object any, message string) {
	Flush()
	logrus.Fatalf("|%20s| %s", objToString(object), message)
}

func Fatalf(object any, message string, args ...any) {
	Flush()
	logrus.Fatalf("|%20s| %s", objToString(object), fmt.Sprintf(message, args...))
}
