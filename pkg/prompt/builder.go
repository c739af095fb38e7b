package prompt

import (
	"fmt"
	"strings"

	"lira-support-be/internal/catalog"
	"lira-support-be/pkg/language"
)

// Rule set variants. The enhanced set ships with the Azure speech
// deployment and adds localized currency and numeral formatting rules.
const (
	VariantBase     = "base"
	VariantEnhanced = "enhanced"
)

// FormatProducts renders one delimited text block per product in catalog
// order. Output is deterministic; an empty slice yields an empty string.
func FormatProducts(products []catalog.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		var b strings.Builder
		b.WriteString("Product Name: " + p.Name + "\n")
		b.WriteString("Brand: " + p.Brand + "\n")
		b.WriteString("Category: " + p.Category + "\n")
		b.WriteString("Features: " + p.Features + "\n")
		b.WriteString("Usage: " + p.UsageInstructions + "\n")
		b.WriteString("Ingredients: " + strings.Join(p.Ingredients, ", ") + "\n")
		b.WriteString(fmt.Sprintf("Price: %v BDT\n", p.PriceBDT))
		b.WriteString("Suitability: " + p.Suitability + "\n")
		b.WriteString("---")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// BuildSystemPrompt assembles the fixed grounding prompt embedding the
// company article and the formatted catalog verbatim. An empty article or
// catalog still yields a valid prompt.
func BuildSystemPrompt(article, formattedProducts string) string {
	var b strings.Builder
	b.WriteString("You are a professional customer service officer for Lira Cosmetics Ltd.\n\n")
	b.WriteString("Company Info:\n")
	b.WriteString(article)
	b.WriteString("\n\nProducts:\n")
	b.WriteString(formattedProducts)
	return b.String()
}

// StyleRules returns the per-request system message with the reply language
// and formatting rules for the given variant.
func StyleRules(lang, variant string) string {
	var b strings.Builder
	if lang == language.Bangla {
		b.WriteString("Reply in polite, natural Bangla.\n")
	} else {
		b.WriteString("Reply in polite, natural English.\n")
	}
	b.WriteString("Rules:\n")
	b.WriteString("- Answer ONLY from company data\n")
	b.WriteString("- Keep replies short (2-3 sentences)\n")
	b.WriteString("- No emojis, no bullets\n")
	if variant == VariantEnhanced {
		b.WriteString("- No numbered lists\n")
		b.WriteString("- Write prices with the word টাকা, never a currency code\n")
		b.WriteString("- Write numbers as plain digits\n")
	}
	return b.String()
}
