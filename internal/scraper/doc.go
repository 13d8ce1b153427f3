// Package scraper collects raw event listings from the Cheltenham
// Festivals website.
//
// The listing page is rendered client-side, so a headless Chromium session
// (chromedp) drives navigation and pagination; the rendered HTML is then
// parsed with goquery. HTML extraction is kept in pure functions over a
// document so it can be tested against fixtures without a browser.
package scraper
