package alice

import (
	"fmt"
	"runtime"
	"strings"
)

// Version is the SDK release version, reported through the
// Alice-User-Agent header.
const Version = "0.1.0"

// UserAgent builds the informational Alice-User-Agent header value.
func UserAgent() string {
	return fmt.Sprintf("onboarding-go/%s (%s; %s) go %s",
		Version, runtime.GOOS, runtime.GOARCH,
		strings.TrimPrefix(runtime.Version(), "go"))
}
