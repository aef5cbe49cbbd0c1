package catalog

import "github.com/pricepulse/backend/internal/domain"

// defaultEstimate covers any catalog id missing from the table below.
var defaultEstimate = domain.PriceSummary{Average: 10, Low: 5, High: 15}

// FallbackEstimate returns the static price estimate for a catalog
// product id, used whenever live data is unusable.
func FallbackEstimate(id string) domain.PriceSummary {
	if s, ok := fallbackEstimates[id]; ok {
		return s
	}
	return defaultEstimate
}

// fallbackEstimates are hand-authored, roughly tracking shelf prices at the
// time of deployment. They only need to be plausible enough to anchor a
// rating when no crawl has ever succeeded.
var fallbackEstimates = map[string]domain.PriceSummary{
	"milk-3pct":         {Average: 6.3, Low: 5.9, High: 7.1},
	"cottage-cheese":    {Average: 5.9, Low: 5.2, High: 6.9},
	"yellow-cheese":     {Average: 14.9, Low: 11.9, High: 19.9},
	"white-cheese":      {Average: 5.5, Low: 4.9, High: 6.5},
	"butter":            {Average: 5.9, Low: 4.9, High: 7.5},
	"eggs-l":            {Average: 13.2, Low: 12.1, High: 15.9},
	"plain-yogurt":      {Average: 6.9, Low: 5.5, High: 8.9},
	"tomatoes":          {Average: 6.9, Low: 3.9, High: 10.9},
	"cucumbers":         {Average: 5.9, Low: 3.4, High: 9.9},
	"onions":            {Average: 4.4, Low: 2.9, High: 6.9},
	"potatoes":          {Average: 4.9, Low: 2.9, High: 7.9},
	"carrots":           {Average: 4.5, Low: 2.9, High: 6.9},
	"red-peppers":       {Average: 9.9, Low: 5.9, High: 14.9},
	"bananas":           {Average: 7.9, Low: 5.9, High: 10.9},
	"apples":            {Average: 9.9, Low: 6.9, High: 13.9},
	"avocado":           {Average: 12.9, Low: 8.9, High: 17.9},
	"lemons":            {Average: 7.9, Low: 4.9, High: 11.9},
	"chicken-breast":    {Average: 34.9, Low: 26.9, High: 44.9},
	"whole-chicken":     {Average: 19.9, Low: 14.9, High: 26.9},
	"ground-beef":       {Average: 54.9, Low: 44.9, High: 69.9},
	"salmon-fillet":     {Average: 89.9, Low: 69.9, High: 119.9},
	"white-bread":       {Average: 7.5, Low: 5.9, High: 9.9},
	"whole-wheat-bread": {Average: 9.9, Low: 7.9, High: 13.9},
	"pitot":             {Average: 9.9, Low: 7.5, High: 12.9},
	"rice":              {Average: 9.9, Low: 6.9, High: 14.9},
	"pasta":             {Average: 5.9, Low: 3.9, High: 8.9},
	"flour":             {Average: 4.9, Low: 3.5, High: 6.9},
	"sugar":             {Average: 4.9, Low: 3.9, High: 6.5},
	"olive-oil":         {Average: 39.9, Low: 29.9, High: 54.9},
	"canola-oil":        {Average: 11.9, Low: 8.9, High: 15.9},
	"tahini":            {Average: 14.9, Low: 10.9, High: 19.9},
	"hummus":            {Average: 8.9, Low: 6.9, High: 11.9},
	"canned-tuna":       {Average: 19.9, Low: 14.9, High: 26.9},
	"tomato-paste":      {Average: 6.9, Low: 4.9, High: 8.9},
	"instant-coffee":    {Average: 24.9, Low: 18.9, High: 32.9},
	"cola":              {Average: 7.9, Low: 5.9, High: 9.9},
	"orange-juice":      {Average: 9.9, Low: 6.9, High: 13.9},
	"mineral-water":     {Average: 12.9, Low: 9.9, High: 17.9},
	"chocolate-bar":     {Average: 5.9, Low: 3.9, High: 7.9},
	"peanut-snack":      {Average: 4.9, Low: 3.4, High: 6.9},
	"toilet-paper":      {Average: 34.9, Low: 24.9, High: 44.9},
	"dish-soap":         {Average: 9.9, Low: 6.9, High: 13.9},
}
