package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

const (
	OUTPUT_TMPL_NAME = "name"
	OUTPUT_TMPL_PID  = "pid"
	OUTPUT_TMPL_DATE = "date"
)

// RenderOutputFile expands the template variables of the profile's
// output_file and resolves a relative result against the output
// directory. Drive-letter paths are kept as written so the Cygwin rewrite
// can still apply. An empty output_file renders as an empty path.
func (c *Config) RenderOutputFile(lc *LoggerConfig, now time.Time) (string, error) {
	if lc.OutputFile == "" {
		return "", nil
	}

	path, err := renderOutputTemplate(lc.OutputFile, map[string]string{
		OUTPUT_TMPL_NAME: lc.Name,
		OUTPUT_TMPL_PID:  strconv.Itoa(os.Getpid()),
		OUTPUT_TMPL_DATE: now.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	if utils.IsDrivePath(path) {
		return path, nil
	}
	return utils.GetAbsolutePath(path, c.GetAbsOutputDir()), nil
}

// UsesProcessID reports whether the profile's output_file contains
// {{pid}}. Such a path names a different file in every process, so a later
// run cannot clear or follow what an earlier run wrote. {{date}} is stable
// for a calendar day.
func (lc *LoggerConfig) UsesProcessID() bool {
	if !strings.Contains(lc.OutputFile, "{{") {
		return false
	}

	t, err := fasttemplate.NewTemplate(lc.OutputFile, "{{", "}}")
	if err != nil {
		return false
	}

	found := false
	t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if strings.TrimSpace(tag) == OUTPUT_TMPL_PID {
			found = true
		}
		return 0, nil
	})
	return found
}

func renderOutputTemplate(template string, values map[string]string) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return "", err
	}

	return t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return 0, fmt.Errorf("unknown template variable {{%s}}", tag)
		}
		return w.Write([]byte(value))
	})
}
