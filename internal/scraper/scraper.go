package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"festcal/internal/config"
	"festcal/internal/event"
	"festcal/internal/logger"
)

// WhatsOnBaseURL is the festival programme listing. The relatedFestival
// query parameter selects which festival's events are shown.
const WhatsOnBaseURL = "https://www.cheltenhamfestivals.com/whats-on"

// maxPages caps pagination in case the Next button never reports disabled.
const maxPages = 50

// Scraper drives a headless Chromium session over the festival site and
// emits one raw block per discovered event listing.
type Scraper struct {
	cfg *config.Config
}

// New creates a Scraper for the configured festival.
func New(cfg *config.Config) *Scraper {
	return &Scraper{cfg: cfg}
}

// ListingURL returns the whats-on URL filtered to the configured festival.
func (s *Scraper) ListingURL() string {
	params := url.Values{}
	params.Set("menu[relatedFestival]", s.cfg.Festival+" Festival")
	return WhatsOnBaseURL + "?" + params.Encode()
}

// FetchRawBlocks launches headless Chromium, walks every page of the
// listing, then visits each selected event's detail page and extracts its
// raw text fragments. Individual pages that fail to load are skipped with a
// warning; only the browser session itself failing is fatal.
func (s *Scraper) FetchRawBlocks(ctx context.Context) ([]event.RawBlock, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Start the browser before the first timeout-bounded navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	listings, err := s.collectListings(browserCtx)
	if err != nil {
		return nil, err
	}
	logger.Info("collected listings", logger.Fields{
		"festival": s.cfg.Festival,
		"count":    len(listings),
	})

	blocks := make([]event.RawBlock, 0, len(listings))
	for _, l := range listings {
		if !s.cfg.WantsTitle(l.Title) {
			continue
		}
		if l.URL == "" {
			logger.Warn("listing has no detail link", logger.Fields{"title": l.Title})
			continue
		}

		block, err := s.fetchDetail(browserCtx, l)
		if err != nil {
			logger.Warn("skipping event page", logger.Fields{
				"title": l.Title,
				"url":   l.URL,
			})
			continue
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// collectListings walks the paginated results, reading each rendered page
// and clicking Next until the button reports disabled.
func (s *Scraper) collectListings(ctx context.Context) ([]Listing, error) {
	listingURL := s.ListingURL()
	logger.Debug("navigating to listing", logger.Fields{"url": listingURL})

	navCtx, cancel := context.WithTimeout(ctx, s.cfg.PageTimeout())
	defer cancel()

	if err := chromedp.Run(navCtx,
		chromedp.Navigate(listingURL),
		chromedp.WaitVisible(listingItemSelector, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("loading listing page: %w", err)
	}

	seen := make(map[string]bool)
	var listings []Listing

	for page := 1; page <= maxPages; page++ {
		html, err := s.pageHTML(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading listing page %d: %w", page, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("parsing listing page %d: %w", page, err)
		}

		for _, l := range parseListings(doc) {
			if seen[l.Title] {
				continue
			}
			seen[l.Title] = true
			listings = append(listings, l)
		}

		if nextPageDisabled(doc) {
			logger.Debug("last listing page reached", logger.Fields{"page": page})
			break
		}

		clickCtx, cancelClick := context.WithTimeout(ctx, s.cfg.PageTimeout())
		err = chromedp.Run(clickCtx,
			chromedp.Click(nextButtonSelector, chromedp.ByQuery),
			// Let the results re-render before re-reading the DOM.
			chromedp.Sleep(s.cfg.PageDelay()),
		)
		cancelClick()
		if err != nil {
			logger.Warn("pagination stopped early", logger.Fields{"page": page})
			break
		}
	}

	return listings, nil
}

// fetchDetail loads one event page and extracts its raw block.
func (s *Scraper) fetchDetail(ctx context.Context, l Listing) (event.RawBlock, error) {
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.PageTimeout())
	defer cancel()

	var html string
	err := chromedp.Run(navCtx,
		chromedp.Navigate(l.URL),
		chromedp.WaitVisible("time", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return event.RawBlock{}, fmt.Errorf("loading %s: %w", l.URL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return event.RawBlock{}, fmt.Errorf("parsing %s: %w", l.URL, err)
	}

	return parseDetail(doc, l.Title, l.URL), nil
}

func (s *Scraper) pageHTML(ctx context.Context) (string, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.cfg.PageTimeout())
	defer cancel()

	var html string
	if err := chromedp.Run(readCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}
