package shared

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// OpenBrowser opens the default system browser to the specified URL.
//
// Output from the launcher process is discarded so it does not interleave with CLI output.
func OpenBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	if err := openURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

var openURL = browser.OpenURL
