package generator

import (
	"fmt"
	"time"

	"novagen/config"
	"novagen/internal/dates"
	"novagen/internal/models"
	"novagen/internal/rng"
	"novagen/internal/textgen"
)

var socialPlatforms = []string{"Twitter", "Instagram", "Facebook"}

var sentiments = []string{models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative}
var sentimentWeights = []float64{0.60, 0.25, 0.15}

// socialTimestampLayout matches the post export format (UTC, Z suffix).
const socialTimestampLayout = "2006-01-02T15:04:05Z"

// SocialGenerator produces social media posts across six one-month buckets
// following each product's launch.
type SocialGenerator struct {
	products []models.Product
	cfg      *config.Config
	src      *rng.Source
}

// NewSocialGenerator creates a social post generator over the catalog.
func NewSocialGenerator(products []models.Product, cfg *config.Config, src *rng.Source) *SocialGenerator {
	return &SocialGenerator{products: products, cfg: cfg, src: src}
}

// Generate produces the configured per-month volume of posts per product,
// with 1.5x volume in the launch month.
func (g *SocialGenerator) Generate() ([]models.SocialPost, error) {
	var posts []models.SocialPost
	postID := 1

	for _, p := range g.products {
		for month := 0; month < 6; month++ {
			postsThisMonth := g.cfg.SocialPosts.PostsPerProductPerMonth
			if month == 0 {
				postsThisMonth = int(float64(postsThisMonth) * 1.5)
			}

			for i := 0; i < postsThisMonth; i++ {
				posts = append(posts, g.generatePost(p, month, postID))
				postID++
			}
		}
	}
	return posts, nil
}

func (g *SocialGenerator) generatePost(p models.Product, month, postID int) models.SocialPost {
	day := dates.AddDays(p.LaunchDate, month*30+g.src.IntRange(0, 29))
	at := time.Date(day.Year(), day.Month(), day.Day(),
		g.src.IntRange(0, 23), g.src.IntRange(0, 59), g.src.IntRange(0, 59), 0, time.UTC)

	sentiment := rng.WeightedChoice(g.src, sentiments, sentimentWeights)
	text := textgen.SocialPost(g.src, sentiment, p.ProductName)
	hashtags := textgen.Hashtags(g.src, p.ProductLine, sentiment)

	var score float64
	switch sentiment {
	case models.SentimentPositive:
		score = g.src.FloatRange(0.5, 1.0)
	case models.SentimentNegative:
		score = g.src.FloatRange(-1.0, -0.5)
	default:
		score = g.src.FloatRange(-0.3, 0.3)
	}

	platform := rng.Choice(g.src, socialPlatforms)
	followers := g.src.IntRange(100, 50000)

	// Positive posts get higher like rates; negative posts attract
	// proportionally more comments and fewer shares per like.
	var likes, comments, shares int
	if sentiment == models.SentimentPositive {
		likes = int(float64(followers) * g.src.FloatRange(0.02, 0.10))
		comments = int(float64(likes) * g.src.FloatRange(0.05, 0.15))
		shares = int(float64(likes) * g.src.FloatRange(0.02, 0.08))
	} else {
		likes = int(float64(followers) * g.src.FloatRange(0.005, 0.03))
		comments = int(float64(likes) * g.src.FloatRange(0.10, 0.25))
		shares = int(float64(likes) * g.src.FloatRange(0.01, 0.05))
	}

	return models.SocialPost{
		PostID:           fmt.Sprintf("SM-%08d", postID),
		Timestamp:        at.Format(socialTimestampLayout),
		Platform:         platform,
		UserID:           fmt.Sprintf("user_%05d", g.src.IntRange(10000, 99999)),
		UserFollowers:    followers,
		Text:             text,
		ProductMentioned: p.ProductID,
		Hashtags:         hashtags,
		Sentiment:        sentiment,
		SentimentScore:   round2(score),
		Engagement: models.Engagement{
			Likes:    likes,
			Comments: comments,
			Shares:   shares,
		},
		Language: "en",
	}
}
