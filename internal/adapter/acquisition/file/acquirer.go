// Package file serves a previously saved results page instead of driving a
// browser. It backs debug runs and offline tests.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// AcquirerName identifies the file acquirer in logs and metrics.
const AcquirerName = "file"

// Acquirer returns the contents of a saved page for every URL.
type Acquirer struct {
	path string
}

// NewAcquirer creates an Acquirer reading the page saved at path.
func NewAcquirer(path string) *Acquirer {
	return &Acquirer{path: path}
}

// Name returns the acquirer identifier.
func (a *Acquirer) Name() string {
	return AcquirerName
}

// Path returns the file the acquirer reads.
func (a *Acquirer) Path() string {
	return a.path
}

// Acquire reads the saved page. The URL is only used for error reporting.
func (a *Acquirer) Acquire(ctx context.Context, url string, _ bool) (string, error) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.NewAcquisitionTimeoutError(url, err)
		}
		return "", domain.NewAcquisitionError(url, err)
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return "", domain.NewAcquisitionError(url, fmt.Errorf("read saved page: %w", err))
	}
	return string(data), nil
}

var _ domain.PageAcquirer = (*Acquirer)(nil)
