package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

// levels
const (
	debugLevel = 0
	infoLevel  = 1
	warnLevel  = 2
	errorLevel = 3
	fatalLevel = 4
)

// LstdFlags re-exports the stdlib default flags for callers that shadow
// the standard log package.
const LstdFlags = log.LstdFlags

const (
	FormatJson          = "json"
	printDebugLevelJSON = "{\"level\":\"DEBUG\",\"message\":\"%s\",\"timestamp\":\"%s\",\"file\":\"%s\",\"line\":\"%d\"}"
	printInfoLevelJSON  = "{\"level\":\"INFO\",\"message\":\"%s\",\"timestamp\":\"%s\",\"file\":\"%s\",\"line\":\"%d\"}"
	printWarnLevelJSON  = "{\"level\":\"WARN\",\"message\":\"%s\",\"timestamp\":\"%s\",\"file\":\"%s\",\"line\":\"%d\"}"
	printErrorLevelJSON = "{\"level\":\"ERROR\",\"message\":\"%s\",\"timestamp\":\"%s\",\"file\":\"%s\",\"line\":\"%d\"}"
	printFatalLevelJSON = "{\"level\":\"FATAL\",\"message\":\"%s\",\"timestamp\":\"%s\",\"file\":\"%s\",\"line\":\"%d\"}"
)

const (
	printDebugLevel = "[DEBUG] "
	printInfoLevel  = "[INFO] "
	printWarnLevel  = "[WARN] "
	printErrorLevel = "[ERROR] "
	printFatalLevel = "[FATAL] "
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorWhite   = "\033[97m"
	colorYellow  = "\033[33m"
	colorBoldRed = "\033[1;31m"
)

// Logger wraps the stdlib logger with level filtering and two output
// formats (colored text / JSON lines).
type Logger struct {
	mu         sync.RWMutex
	level      int
	baseLogger *log.Logger
	BaseFile   *os.File
	format     string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

func init() {
	defaultLogger = &Logger{
		level:      debugLevel,
		baseLogger: log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile),
	}
}

func parseLevel(strLevel string) int {
	switch strings.ToUpper(strLevel) {
	case "DEBUG":
		return debugLevel
	case "INFO":
		return infoLevel
	case "WARN":
		return warnLevel
	case "ERROR":
		return errorLevel
	case "FATAL":
		return fatalLevel
	}
	return infoLevel
}

// New configures the default logger. When pathname is non-empty a
// timestamped log file is created there and written alongside stdout.
func New(strLevel, format string, pathname string, flag int, outWriter ...io.Writer) error {
	level := parseLevel(strLevel)
	once.Do(func() {
		var baseFile *os.File
		writes := append([]io.Writer{os.Stdout}, outWriter...)
		if pathname != "" {
			now := time.Now()
			filename := fmt.Sprintf("%d%02d%02d_%02d_%02d_%02d.log",
				now.Year(),
				now.Month(),
				now.Day(),
				now.Hour(),
				now.Minute(),
				now.Second())

			_ = os.MkdirAll(pathname, os.ModePerm)
			file, err := os.Create(path.Join(pathname, filename))
			if err != nil {
				Fatal("create log file: %v", err)
			}
			writes = append(writes, file)
			baseFile = file
		}
		defaultLogger.mu.Lock()
		defer defaultLogger.mu.Unlock()
		defaultLogger.level = level
		defaultLogger.baseLogger = log.New(io.MultiWriter(writes...), "", flag)
		defaultLogger.BaseFile = baseFile
		defaultLogger.format = format
	})
	return nil
}

// Close It's dangerous to call the method on logging
func (logger *Logger) Close() {
	if logger.BaseFile != nil {
		logger.BaseFile.Close()
	}
	logger.baseLogger = nil
	logger.BaseFile = nil
}

func (logger *Logger) GetOutputLv() int {
	logger.mu.RLock()
	lv := logger.level
	logger.mu.RUnlock()
	return lv
}

// SetLogLevel updates level and format at runtime.
func (logger *Logger) SetLogLevel(strLevel, format string) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.level = parseLevel(strLevel)
	logger.format = format
}

func SetLogLevelDefault(lv, format string) {
	defaultLogger.SetLogLevel(lv, format)
}

func getCallerInfo() (string, int) {
	// skip doPrintf, the level func and the package-level wrapper
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "???", 0
	}
	return path.Base(file), line
}

func (logger *Logger) doPrintf(level int, a ...interface{}) {
	empty := ""
	if level < logger.GetOutputLv() || len(a) == 0 {
		return
	}
	format := empty
	if len(a) > 1 {
		format, _ = a[0].(string)
	}
	if logger.baseLogger == nil {
		panic("logger closed")
	}
	content := empty
	if format != empty {
		content = fmt.Sprintf(format, a[1:]...)
	} else {
		sb := strings.Builder{}
		for _, v := range a {
			sb.WriteString(fmt.Sprintf("%+v", v))
		}
		content = sb.String()
	}
	if logger.format == FormatJson {
		file, line := getCallerInfo()
		ts := time.Now().Format(time.RFC3339)
		switch level {
		case debugLevel:
			logger.baseLogger.Output(3, fmt.Sprintf(printDebugLevelJSON, content, ts, file, line))
		case infoLevel:
			logger.baseLogger.Output(3, fmt.Sprintf(printInfoLevelJSON, content, ts, file, line))
		case warnLevel:
			logger.baseLogger.Output(3, fmt.Sprintf(printWarnLevelJSON, content, ts, file, line))
		case errorLevel:
			logger.baseLogger.Output(3, fmt.Sprintf(printErrorLevelJSON, content, ts, file, line))
		case fatalLevel:
			logger.baseLogger.Output(3, fmt.Sprintf(printFatalLevelJSON, content, ts, file, line))
			os.Exit(1)
		}
		return
	}
	switch level {
	case debugLevel:
		logger.baseLogger.Output(3, colorWhite+printDebugLevel+content+colorReset)
	case infoLevel:
		logger.baseLogger.Output(3, colorWhite+printInfoLevel+content+colorReset)
	case warnLevel:
		logger.baseLogger.Output(3, colorYellow+printWarnLevel+content+colorReset)
	case errorLevel:
		logger.baseLogger.Output(3, colorRed+printErrorLevel+content+colorReset)
	case fatalLevel:
		logger.baseLogger.Output(3, colorBoldRed+printFatalLevel+content+colorReset)
		os.Exit(1)
	}
}

func Debug(a ...interface{}) {
	defaultLogger.doPrintf(debugLevel, a...)
}

func Info(a ...interface{}) {
	defaultLogger.doPrintf(infoLevel, a...)
}

func Warn(a ...interface{}) {
	defaultLogger.doPrintf(warnLevel, a...)
}

func Error(a ...interface{}) {
	defaultLogger.doPrintf(errorLevel, a...)
}

func Fatal(a ...interface{}) {
	defaultLogger.doPrintf(fatalLevel, a...)
}

func Fatalf(format string, a ...interface{}) {
	args := append([]interface{}{format}, a...)
	defaultLogger.doPrintf(fatalLevel, args...)
}

// Close the default logger's file handle, if any.
func Close() {
	defaultLogger.Close()
}
