package transparency

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pricepulse/backend/internal/domain"
)

// itemBlockPattern bounds one logical record. The stream may embed <Item>
// blocks inside larger mixed-content documents; everything outside the
// blocks is ignored. The pattern deliberately does not match <Items> wrappers.
var itemBlockPattern = regexp.MustCompile(`(?s)<Item(?:\s[^>]*)?>(.*?)</Item>`)

// Field tag aliases, in precedence order: transparency files disagree on
// tag names across schema versions, and the first alias present wins.
var (
	identifierAliases = []string{"ItemCode", "Barcode", "ItemId"}
	nameAliases       = []string{"ItemName", "ItemNm", "ItemDesc", "ManufacturerItemDescription"}
	priceAliases      = []string{"ItemPrice", "UnitPrice", "Price"}
	quantityAliases   = []string{"Quantity", "QtyInPackage"}
	unitAliases       = []string{"UnitQty", "UnitOfMeasure"}
	updatedAliases    = []string{"PriceUpdateDate", "PriceUpdateTime"}
)

// tagPatterns holds one precompiled value-extraction pattern per known alias.
var tagPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, aliases := range [][]string{
		identifierAliases, nameAliases, priceAliases,
		quantityAliases, unitAliases, updatedAliases,
	} {
		for _, alias := range aliases {
			tagPatterns[alias] = regexp.MustCompile(`(?is)<` + alias + `>\s*(.*?)\s*</` + alias + `>`)
		}
	}
}

// timestampLayouts are tried in order when parsing record update times.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
}

// ParseRecords extracts item records from a price file's text.
//
// A record is emitted only if it has a non-empty identifier and a price
// strictly greater than zero; anything else is silently dropped, and one
// malformed block never aborts parsing of the rest of the stream.
func (c *Client) ParseRecords(text string) []domain.RawRecord {
	blocks := itemBlockPattern.FindAllStringSubmatch(text, -1)

	records := make([]domain.RawRecord, 0, len(blocks))
	for _, block := range blocks {
		if record, ok := parseItemBlock(block[1]); ok {
			records = append(records, record)
		}
	}
	return records
}

// parseItemBlock validates and converts one <Item> block. The boolean is
// false when the block fails the validity check (missing identifier or
// non-positive price).
func parseItemBlock(block string) (domain.RawRecord, bool) {
	identifier := fieldValue(block, identifierAliases)
	if identifier == "" {
		return domain.RawRecord{}, false
	}

	price := parseNumber(fieldValue(block, priceAliases))
	if price <= 0 {
		return domain.RawRecord{}, false
	}

	quantity := parseNumber(fieldValue(block, quantityAliases))
	if quantity <= 0 {
		quantity = 1
	}

	record := domain.RawRecord{
		Identifier: identifier,
		Name:       fieldValue(block, nameAliases),
		Price:      price,
		HighPrice:  price,
		Quantity:   quantity,
		UnitInfo:   fieldValue(block, unitAliases),
	}

	if raw := fieldValue(block, updatedAliases); raw != "" {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				record.UpdatedAt = t
				break
			}
		}
	}

	return record, true
}

// fieldValue returns the first alias's value present in the block, with
// entities unescaped and surrounding whitespace trimmed.
func fieldValue(block string, aliases []string) string {
	for _, alias := range aliases {
		if m := tagPatterns[alias].FindStringSubmatch(block); m != nil {
			return strings.TrimSpace(html.UnescapeString(m[1]))
		}
	}
	return ""
}

// parseNumber parses a numeric field, tolerating thousands separators.
// Unparseable values return 0, the "absent" sentinel.
func parseNumber(raw string) float64 {
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
