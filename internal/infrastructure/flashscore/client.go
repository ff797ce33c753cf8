package flashscore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-standings/internal/platform/logging"
	"github.com/riskibarqy/football-standings/internal/platform/resilience"
	"github.com/riskibarqy/football-standings/internal/usecase"
)

// ErrTransient marks fetch failures that are worth retrying on a later run:
// network errors, timeouts and upstream 5xx responses.
var ErrTransient = errors.New("transient fetch failure")

const (
	defaultWorkers   = 3
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxPageBytes     = 8 << 20
)

// Target names one league and the two listing URLs scraped for it.
type Target struct {
	League      string
	ResultsURL  string
	FixturesURL string
}

// Client fetches league listing pages over HTTP through a bounded worker
// pool, with a circuit breaker shared across all fetches.
type Client struct {
	httpClient *http.Client
	targets    []Target
	workers    int
	breaker    *resilience.CircuitBreaker
	logger     *logging.Logger
}

func NewClient(httpClient *http.Client, targets []Target, workers int, breaker *resilience.CircuitBreaker, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if workers < 1 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		httpClient: httpClient,
		targets:    targets,
		workers:    workers,
		breaker:    breaker,
		logger:     logger,
	}
}

// FetchLeaguePages fetches every (league, mode) page. Failed pages are logged
// and omitted from the output so one broken league does not sink the rest;
// the call errors only when nothing could be fetched at all.
func (c *Client) FetchLeaguePages(ctx context.Context) ([]usecase.RawLeaguePage, error) {
	type fetchJob struct {
		league string
		url    string
		mode   usecase.PageMode
	}

	jobs := make([]fetchJob, 0, len(c.targets)*2)
	for _, target := range c.targets {
		jobs = append(jobs, fetchJob{league: target.League, url: target.ResultsURL, mode: usecase.PageModeResults})
		jobs = append(jobs, fetchJob{league: target.League, url: target.FixturesURL, mode: usecase.PageModeFixtures})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no scrape targets configured")
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		return nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	pages := make([]*usecase.RawLeaguePage, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			page, err := c.fetchPage(ctx, job.league, job.url, job.mode)
			if err != nil {
				errs[i] = err
				return
			}
			pages[i] = &page
		}); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit fetch job: %w", err)
		}
	}
	wg.Wait()

	out := make([]usecase.RawLeaguePage, 0, len(jobs))
	failed := 0
	for i := range jobs {
		if errs[i] != nil {
			failed++
			c.logger.WarnContext(ctx, "league page fetch failed",
				"league", jobs[i].league,
				"mode", string(jobs[i].mode),
				"error", errs[i],
			)
			continue
		}
		out = append(out, *pages[i])
	}

	if failed == len(jobs) {
		return nil, fmt.Errorf("all %d page fetches failed, last: %w", failed, errs[len(errs)-1])
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, leagueName, url string, mode usecase.PageMode) (usecase.RawLeaguePage, error) {
	if strings.TrimSpace(url) == "" {
		return usecase.RawLeaguePage{}, fmt.Errorf("league %q has no %s url", leagueName, mode)
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return usecase.RawLeaguePage{}, errors.Mark(err, ErrTransient)
		}
	}

	page, err := c.doFetch(ctx, leagueName, url, mode)
	if c.breaker != nil {
		if errors.Is(err, ErrTransient) {
			c.breaker.RecordFailure()
		} else if err == nil {
			c.breaker.RecordSuccess()
		}
	}
	return page, err
}

func (c *Client) doFetch(ctx context.Context, leagueName, url string, mode usecase.PageMode) (usecase.RawLeaguePage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return usecase.RawLeaguePage{}, fmt.Errorf("create page request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return usecase.RawLeaguePage{}, errors.Mark(fmt.Errorf("request league page: %w", err), ErrTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return usecase.RawLeaguePage{}, errors.Mark(fmt.Errorf("league page returned status %d", resp.StatusCode), ErrTransient)
	}
	if resp.StatusCode != http.StatusOK {
		return usecase.RawLeaguePage{}, fmt.Errorf("league page returned status %d", resp.StatusCode)
	}

	return parseLeaguePage(io.LimitReader(resp.Body, maxPageBytes), leagueName, mode)
}
