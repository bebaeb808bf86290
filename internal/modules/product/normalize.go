package product

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
)

// publicHost resolves the relative image paths Vendus returns.
const publicHost = "https://www.vendus.pt"

// Normalize maps one upstream catalog record into the stable Product view.
// It is total: unknown or missing fields degrade to defaults, never to an
// error, so a malformed record cannot take down the whole listing.
func Normalize(rec map[string]any, rules []Rule) Product {
	name := vendus.Str(rec, "title", "name")

	price, _ := vendus.Num(rec, "price", "gross_price")

	var stock *float64
	if v, ok := vendus.Num(rec, "stock_total", "stock"); ok {
		stock = &v
	}

	category := Classify(name, rules)

	img, imgSmall, found := resolveImages(rec)
	if !found {
		img = placeholder(category, "600x400")
		imgSmall = placeholder(category, "300x200")
	}

	var id any
	if v, ok := rec["id"]; ok {
		id = v
	}

	return Product{
		ID:            id,
		Name:          name,
		Price:         price,
		Stock:         stock,
		Category:      category,
		ImageURL:      absURL(img),
		ImageURLSmall: absURL(imgSmall),
	}
}

// resolveImages prefers the record's own first image, then the first image
// found among its variants.
func resolveImages(rec map[string]any) (string, string, bool) {
	if rec == nil {
		return "", "", false
	}
	if img, small, ok := ownImages(rec); ok {
		return img, small, true
	}
	variants, _ := rec["variants"].([]any)
	for _, v := range variants {
		if img, small, ok := ownImages(vendus.AsMap(v)); ok {
			return img, small, true
		}
	}
	return "", "", false
}

func ownImages(rec map[string]any) (string, string, bool) {
	if rec == nil {
		return "", "", false
	}
	if imgs, ok := rec["images"].([]any); ok && len(imgs) > 0 {
		switch first := imgs[0].(type) {
		case string:
			if first != "" {
				return first, first, true
			}
		case map[string]any:
			large := vendus.Str(first, "m", "url")
			small := vendus.Str(first, "xs", "s")
			if small == "" {
				small = large
			}
			if large != "" {
				return large, small, true
			}
		}
	}
	if s := vendus.Str(rec, "image", "image_url"); s != "" {
		return s, s, true
	}
	return "", "", false
}

func absURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return publicHost + "/" + strings.TrimLeft(s, "/")
}

func placeholder(category, size string) string {
	return fmt.Sprintf("https://placehold.co/%s?text=%s", size, url.QueryEscape(category))
}
