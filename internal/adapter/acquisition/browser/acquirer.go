// Package browser acquires rendered results pages by driving headless Chrome
// through the DevTools protocol.
package browser

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/scraper"
)

// AcquirerName identifies the browser acquirer in logs and metrics.
const AcquirerName = "browser"

// SelectorSubmitButton is the search button of the booking interstitial.
const SelectorSubmitButton = "button#form-mixin--submit-button"

// Viewport of the launched browser window.
const (
	ViewportWidth  = 1366
	ViewportHeight = 768
)

// DefaultNavigationTimeout bounds the wait for results after the page loads.
const DefaultNavigationTimeout = 5 * time.Second

// DefaultUserAgents is a pool of desktop Chrome user agents on macOS and Linux.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.6312.122 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.6261.129 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.6312.105 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.6167.184 Safari/537.36",
}

// Config configures the browser acquirer.
type Config struct {
	// NavigationTimeout bounds the wait for the results container
	NavigationTimeout time.Duration

	// DumpPath receives the rendered page on debug acquisitions; empty disables it
	DumpPath string

	// ExecPath overrides the Chrome binary; empty uses the default lookup
	ExecPath string

	// UserAgents is the pool a user agent is drawn from per acquisition
	UserAgents []string
}

// Acquirer launches one browser per acquisition, so concurrent calls never
// share a tab.
type Acquirer struct {
	cfg  Config
	log  *logger.Logger
	pick func(n int) int
}

// NewAcquirer creates a browser Acquirer. Zero config fields take defaults.
func NewAcquirer(cfg Config, log *logger.Logger) *Acquirer {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = DefaultUserAgents
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Acquirer{cfg: cfg, log: log.WithAcquirer(AcquirerName), pick: rand.IntN}
}

// Name returns the acquirer identifier.
func (a *Acquirer) Name() string {
	return AcquirerName
}

// Acquire loads url and returns the rendered markup. When the site redirects
// to its booking interstitial, the search form is submitted and the results
// container is awaited for at most NavigationTimeout. debug runs the browser
// with a visible window and writes the page to DumpPath.
func (a *Acquirer) Acquire(ctx context.Context, pageURL string, debug bool) (string, error) {
	userAgent := a.userAgent()
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, a.allocatorOptions(userAgent, debug)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...interface{}) {
		a.log.Debug().Msgf(format, args...)
	}))
	defer cancelBrowser()

	a.log.Debug().Str("url", pageURL).Str("user_agent", userAgent).Bool("headless", !debug).Msg("Launching browser")

	var location string
	if err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(ViewportWidth, ViewportHeight),
		chromedp.Navigate(pageURL),
		chromedp.Location(&location),
	); err != nil {
		return "", classify(ctx, pageURL, err)
	}

	redirect := redirected(pageURL, location)
	if redirect {
		a.log.Info().Str("location", location).Msg("Redirected to booking interstitial, resubmitting search")
		if err := chromedp.Run(browserCtx,
			chromedp.WaitVisible(SelectorSubmitButton, chromedp.ByQuery),
			chromedp.Click(SelectorSubmitButton, chromedp.ByQuery),
		); err != nil {
			return "", classify(ctx, pageURL, err)
		}
	}

	if err := a.waitForResults(browserCtx); err != nil {
		if redirect || ctx.Err() != nil {
			return "", classify(ctx, pageURL, err)
		}
		a.log.Warn().Err(err).Msg("Results container did not render, capturing page as is")
	}

	var markup string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &markup, chromedp.ByQuery)); err != nil {
		return "", classify(ctx, pageURL, err)
	}

	if debug && a.cfg.DumpPath != "" {
		if err := writeDump(a.cfg.DumpPath, markup); err != nil {
			a.log.Warn().Err(err).Str("path", a.cfg.DumpPath).Msg("Failed to write debug page")
		} else {
			a.log.Debug().Str("path", a.cfg.DumpPath).Msg("Wrote debug page")
		}
	}

	return markup, nil
}

func (a *Acquirer) waitForResults(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, a.cfg.NavigationTimeout)
	defer cancel()
	return chromedp.Run(waitCtx, chromedp.WaitReady(scraper.SelectorResultsContainer, chromedp.ByQuery))
}

func (a *Acquirer) allocatorOptions(userAgent string, debug bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !debug),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(ViewportWidth, ViewportHeight),
	)
	if a.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(a.cfg.ExecPath))
	}
	return opts
}

func (a *Acquirer) userAgent() string {
	return a.cfg.UserAgents[a.pick(len(a.cfg.UserAgents))]
}

// redirected reports whether the browser landed on a different page than
// requested. Query strings are ignored since the site may reorder them.
func redirected(requested, landed string) bool {
	r, err := url.Parse(requested)
	if err != nil {
		return requested != landed
	}
	l, err := url.Parse(landed)
	if err != nil {
		return true
	}
	return r.Host != l.Host || r.Path != l.Path
}

// classify converts a browser failure into a domain acquisition error. Any
// deadline, whether the search timeout or the navigation bound, is a timeout.
func classify(ctx context.Context, pageURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewAcquisitionTimeoutError(pageURL, err)
	}
	return domain.NewAcquisitionError(pageURL, err)
}

func writeDump(path, markup string) error {
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var _ domain.PageAcquirer = (*Acquirer)(nil)
