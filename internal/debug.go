package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

func debugEnabled() bool {
	return debugLog.Writer() != io.Discard
}

// Readable name for a point, coloured by which side of the XY plane it sits
// on. Names are only stable within a run.
func (p Point3) DbgName() string {
	name := dbg.Name(p)
	switch {
	case p.Z > 0:
		return aurora.Cyan(name).String()
	case p.Z < 0:
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (t Triangle) DbgName() string {
	names := make([]string, 0, 3)
	for _, p := range t.Points() {
		names = append(names, p.DbgName())
	}
	return fmt.Sprintf("%s %v", strings.Join(names, "→"), t)
}
