// Package textgen builds review and social-post prose from fixed,
// rating- and sentiment-keyed template pools. All randomness is routed
// through the shared rng.Source; the package holds no entropy of its own.
package textgen

import (
	"strings"

	"novagen/internal/models"
	"novagen/internal/rng"
)

// ReviewContent is the generated title and body for a review.
type ReviewContent struct {
	Title string
	Text  string
}

// ProsCons is the generated pros/cons pair for a review.
type ProsCons struct {
	Pros []string
	Cons []string
}

func fill(template, product, feature string) string {
	r := strings.NewReplacer("{product}", product, "{feature}", feature)
	return r.Replace(template)
}

// pickFeature draws a feature category and then a phrase from it.
func pickFeature(s *rng.Source) string {
	category := rng.Choice(s, featureCategories)
	return rng.Choice(s, features[category])
}

// ReviewText generates a review title and body keyed by rating. Ratings of
// 4-5 draw from the positive pools and get an extra comment sentence; 3 is
// neutral; 1-2 are negative.
func ReviewText(s *rng.Source, rating int, productName string) ReviewContent {
	feature := pickFeature(s)

	var templates, titles []string
	switch {
	case rating >= 4:
		templates = positiveReviewTemplates
		titles = positiveTitles
	case rating == 3:
		templates = neutralReviewTemplates
		titles = neutralTitles
	default:
		templates = negativeReviewTemplates
		titles = negativeTitles
	}

	template := rng.Choice(s, templates)
	title := rng.Choice(s, titles)
	text := fill(template, productName, feature)

	if rating >= 4 {
		text += fill(rng.Choice(s, additionalComments), productName, feature)
	}

	return ReviewContent{Title: title, Text: text}
}

// ProsConsFor samples pros and cons without replacement, with cardinality
// keyed by rating: higher rating means more pros and fewer cons.
func ProsConsFor(s *rng.Source, rating int) ProsCons {
	var pros, cons []string
	switch {
	case rating >= 4:
		pros = rng.Sample(s, allPros, s.IntRange(2, 4))
		cons = rng.Sample(s, allCons, s.IntRange(0, 1))
	case rating == 3:
		pros = rng.Sample(s, allPros, s.IntRange(1, 2))
		cons = rng.Sample(s, allCons, s.IntRange(1, 2))
	default:
		pros = rng.Sample(s, allPros, s.IntRange(0, 1))
		cons = rng.Sample(s, allCons, s.IntRange(2, 3))
	}
	return ProsCons{Pros: pros, Cons: cons}
}

// SocialPost generates social media post text keyed by sentiment category.
func SocialPost(s *rng.Source, sentiment, productName string) string {
	feature := pickFeature(s)

	var templates []string
	switch sentiment {
	case models.SentimentPositive:
		templates = socialPositiveTemplates
	case models.SentimentNegative:
		templates = socialNegativeTemplates
	default:
		templates = socialNeutralTemplates
	}

	return fill(rng.Choice(s, templates), productName, feature)
}

// Hashtags combines the fixed per-line tags with 1-2 sentiment-appropriate
// extras sampled without replacement.
func Hashtags(s *rng.Source, productLine, sentiment string) []string {
	base := []string{
		"#Nova" + strings.ReplaceAll(productLine, " ", ""),
		"#smartphone",
		"#tech",
	}

	var extras []string
	switch sentiment {
	case models.SentimentPositive:
		extras = positiveHashtags
	case models.SentimentNegative:
		extras = negativeHashtags
	default:
		extras = neutralHashtags
	}

	k := s.IntRange(1, 2)
	return append(base, rng.Sample(s, extras, k)...)
}
