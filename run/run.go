// Package run drives the read-parse-evaluate-print loop over a
// state.State, factored out of main the way ivy's run package is so
// it can be driven by tests without a real terminal.
package run

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/lex"
	"gocas.dev/gocas/parse"
	"gocas.dev/gocas/state"
)

// cpuTime reports the process's cumulative user and system time;
// runLine takes a reading before and after parsing a line and prints
// the difference. Replaced by time_unix.go on platforms that support
// getrusage. The default reports zero so the cpu debug flag degrades
// silently instead of failing.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// Run reads lines from r, evaluates each against st, and writes
// results to w until r hits EOF. When interactive is true, Run prints
// st's prompt before each line and a newline once input ends.
func Run(r io.Reader, w io.Writer, st *state.State, interactive bool) {
	conf := st.Config()
	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(w, conf.Prompt())
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Fprintln(w)
			}
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		runLine(w, st, line, interactive)
	}
}

func runLine(w io.Writer, st *state.State, line string, interactive bool) {
	p := parse.New(lex.New(line), st)

	start := time.Now()
	user, sys := cpuTime()
	result, err := p.Line()
	user2, sys2 := cpuTime()

	if err != nil {
		logrus.WithField("line", line).WithError(err).Error("evaluation failed")
		fmt.Fprintln(w, "error:", err)
		return
	}
	if !result.Value.IsValid() {
		return // blank line
	}

	v, err := expr.Eval(result.Value)
	if err != nil {
		logrus.WithField("line", line).WithError(err).Error("evaluation failed")
		fmt.Fprintln(w, "error:", err)
		return
	}
	if result.IsAssign {
		st.Assign(result.Name, v)
	}

	fmt.Fprintln(w, v.String())

	if interactive && st.Config().Debug("cpu") {
		fmt.Fprintf(w, "(%s wall, %s user, %s sys)\n", time.Since(start), user2-user, sys2-sys)
	}
}
