package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"festcal/internal/event"
)

// Selectors for the festival site. The listing is an Algolia-rendered
// search results page; detail pages use the site's component classes.
const (
	listingItemSelector = "li.ais-Hits-item.c-event-search__results-item"
	nextButtonSelector  = `a[aria-label="Next"]`
	metaValueSelector   = ".c-meta__value.o-text"
	descriptionSelector = ".o-block.o-text.o-text-block"

	moreInfoText = "More info"
)

// Listing is one entry scraped off the search results page: the event title
// and the URL of its detail page.
type Listing struct {
	Title string
	URL   string
}

// parseListings extracts event titles and their "More info" links from a
// rendered results page. Entries without a recognizable link are kept with
// an empty URL so the caller can warn about them.
func parseListings(doc *goquery.Document) []Listing {
	var listings []Listing

	doc.Find(listingItemSelector).Each(func(i int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("h3").First().Text())
		if title == "" {
			return
		}

		listing := Listing{Title: title}
		item.Find("a").EachWithBreak(func(j int, link *goquery.Selection) bool {
			if strings.TrimSpace(link.Text()) != moreInfoText {
				return true
			}
			if href, ok := link.Attr("href"); ok {
				listing.URL = href
			}
			return false
		})

		listings = append(listings, listing)
	})

	return listings
}

// nextPageDisabled reports whether the pagination "Next" button is absent or
// marked disabled, i.e. the current page is the last one.
func nextPageDisabled(doc *goquery.Document) bool {
	next := doc.Find(nextButtonSelector).First()
	if next.Length() == 0 {
		return true
	}
	cls, _ := next.Attr("class")
	return strings.Contains(cls, "is-disabled")
}

// parseDetail extracts the raw text fragments from a rendered event detail
// page. No validation happens here; the returned block is handed to the
// field parser as-is.
func parseDetail(doc *goquery.Document, title, sourceURL string) event.RawBlock {
	block := event.RawBlock{
		Title:     title,
		SourceURL: sourceURL,
	}

	// The <time> element reads like "Wed 5 Jun, 7.30pm": date before the
	// comma, start time after it.
	block.DateText, block.TimeText = splitWhen(doc.Find("time").First().Text())

	// Venue and duration share the same meta component. The venue is the
	// value mentioning "United Kingdom" with its trailing map link removed;
	// the duration value reads like "90 minutes".
	doc.Find(metaValueSelector).Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())

		if strings.Contains(text, "United Kingdom") {
			linkText := strings.TrimSpace(sel.Find("a").Text())
			if linkText != "" {
				text = strings.Replace(text, linkText, "", 1)
			}
			block.Venue = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), ","))
			return
		}

		if strings.Contains(text, "minute") && block.TimeText != "" {
			block.TimeText += ", " + text
		}
	})

	block.Description = strings.TrimSpace(doc.Find(descriptionSelector).First().Text())

	return block
}

// splitWhen splits the detail page's combined date/time text on the first
// comma: "Wed 5 Jun, 7.30pm" -> ("Wed 5 Jun", "7.30pm").
func splitWhen(text string) (dateText, timeText string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	parts := strings.SplitN(text, ",", 2)
	dateText = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		timeText = strings.TrimSpace(parts[1])
	}
	return dateText, timeText
}
