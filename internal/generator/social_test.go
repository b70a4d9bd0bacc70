package generator

import (
	"testing"
	"time"

	"novagen/config"
	"novagen/internal/models"
	"novagen/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestPosts(t *testing.T, cfg *config.Config, src *rng.Source) ([]models.Product, []models.SocialPost) {
	t.Helper()

	products, err := NewProductGenerator(cfg, src).Generate()
	require.NoError(t, err)

	posts, err := NewSocialGenerator(products, cfg, src).Generate()
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	return products, posts
}

func TestSocialPostVolume(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Prime", SeriesCount: 1})
	cfg.SocialPosts.PostsPerProductPerMonth = 10
	_, posts := generateTestPosts(t, cfg, rng.NewSource(42))

	// Launch month carries 1.5x volume, the five following months 10 each.
	assert.Len(t, posts, 15+5*10)
}

func TestSocialPostWindowPerProduct(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Mini", SeriesCount: 2})
	products, posts := generateTestPosts(t, cfg, rng.NewSource(42))

	launches := map[string]time.Time{}
	for _, p := range products {
		launches[p.ProductID] = p.LaunchDate
	}

	for _, post := range posts {
		launch, ok := launches[post.ProductMentioned]
		require.True(t, ok, post.ProductMentioned)

		at, err := time.Parse(socialTimestampLayout, post.Timestamp)
		require.NoError(t, err)

		// Posts land within the six 30-day buckets after launch.
		assert.False(t, at.Before(launch))
		assert.True(t, at.Before(launch.AddDate(0, 0, 180)))
	}
}

func TestSocialSentimentScoreConsistency(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Plus", SeriesCount: 1})
	_, posts := generateTestPosts(t, cfg, rng.NewSource(42))

	for _, post := range posts {
		switch post.Sentiment {
		case models.SentimentPositive:
			assert.GreaterOrEqual(t, post.SentimentScore, 0.5)
			assert.LessOrEqual(t, post.SentimentScore, 1.0)
		case models.SentimentNegative:
			assert.GreaterOrEqual(t, post.SentimentScore, -1.0)
			assert.LessOrEqual(t, post.SentimentScore, -0.5)
		case models.SentimentNeutral:
			assert.GreaterOrEqual(t, post.SentimentScore, -0.3)
			assert.LessOrEqual(t, post.SentimentScore, 0.3)
		default:
			t.Fatalf("unexpected sentiment %q", post.Sentiment)
		}
	}
}

func TestSocialSentimentDistribution(t *testing.T) {
	cfg := testConfig(
		config.ProductLineConfig{Name: "Prime", SeriesCount: 3},
		config.ProductLineConfig{Name: "Lite", SeriesCount: 3},
	)
	cfg.SocialPosts.PostsPerProductPerMonth = 50
	_, posts := generateTestPosts(t, cfg, rng.NewSource(42))

	counts := map[string]int{}
	for _, post := range posts {
		counts[post.Sentiment]++
	}

	total := float64(len(posts))
	assert.InDelta(t, 0.60, float64(counts[models.SentimentPositive])/total, 0.05)
	assert.InDelta(t, 0.25, float64(counts[models.SentimentNeutral])/total, 0.05)
	assert.InDelta(t, 0.15, float64(counts[models.SentimentNegative])/total, 0.05)
}

func TestSocialEngagementBounds(t *testing.T) {
	cfg := testConfig(config.ProductLineConfig{Name: "Max", SeriesCount: 1})
	_, posts := generateTestPosts(t, cfg, rng.NewSource(42))

	for _, post := range posts {
		assert.GreaterOrEqual(t, post.UserFollowers, 100)
		assert.LessOrEqual(t, post.UserFollowers, 50000)

		e := post.Engagement
		assert.LessOrEqual(t, e.Likes, post.UserFollowers)
		assert.LessOrEqual(t, e.Comments, e.Likes)
		assert.LessOrEqual(t, e.Shares, e.Likes)

		assert.Equal(t, "en", post.Language)
		assert.Contains(t, socialPlatforms, post.Platform)
		assert.GreaterOrEqual(t, len(post.Hashtags), 4)
	}
}
