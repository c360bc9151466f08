package seed

import (
	"context"
	"fmt"
	"time"

	"fitlife-blog/internal/domain"
)

// ArticleStore is the subset of the article repository the seeder needs.
type ArticleStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	Insert(ctx context.Context, a domain.Article) error
}

type articleSeed struct {
	ID          string
	Title       string
	Excerpt     string
	Content     string
	Category    string
	Author      string
	PublishDate time.Time
	ReadTime    string
	Image       string
	Featured    bool
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

var articles = []articleSeed{
	{
		ID:          "1",
		Title:       "The Ultimate Guide to Building Muscle Mass",
		Excerpt:     "Discover the science-backed strategies for maximizing muscle growth, from progressive overload to optimal nutrition timing.",
		Content:     "Building muscle mass requires a combination of proper training, nutrition, and recovery. This comprehensive guide will walk you through everything you need to know to achieve your fitness goals effectively and sustainably.",
		Category:    "Strength Training",
		Author:      "Sarah Johnson",
		PublishDate: day(time.August, 15),
		ReadTime:    "8 min read",
		Image:       "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61",
		Featured:    true,
	},
	{
		ID:          "2",
		Title:       "High-Intensity Interval Training: Maximize Your Cardio",
		Excerpt:     "Learn how HIIT can transform your fitness routine with shorter, more effective workouts that burn fat and build endurance.",
		Content:     "HIIT training has revolutionized the way we approach cardiovascular fitness. By alternating between high-intensity bursts and recovery periods, you can achieve better results in less time.",
		Category:    "Cardio",
		Author:      "Mike Chen",
		PublishDate: day(time.August, 12),
		ReadTime:    "6 min read",
		Image:       "https://images.unsplash.com/photo-1599058917212-d750089bc07e",
		Featured:    true,
	},
	{
		ID:          "3",
		Title:       "Nutrition Basics: Fueling Your Fitness Journey",
		Excerpt:     "Understanding macros, meal timing, and supplementation to support your training goals and optimize performance.",
		Content:     "Proper nutrition is the foundation of any successful fitness program. Learn how to fuel your body for optimal performance and recovery.",
		Category:    "Nutrition",
		Author:      "Emma Davis",
		PublishDate: day(time.August, 10),
		ReadTime:    "10 min read",
		Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
	},
	{
		ID:          "4",
		Title:       "Mastering the Mind-Muscle Connection",
		Excerpt:     "Enhance your workout effectiveness by developing a stronger mental link with your physical movements.",
		Content:     "The mind-muscle connection is often overlooked but critical for progress. Discover techniques to improve your focus and maximize every rep.",
		Category:    "Training Tips",
		Author:      "David Martinez",
		PublishDate: day(time.August, 8),
		ReadTime:    "5 min read",
		Image:       "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5",
	},
	{
		ID:          "5",
		Title:       "Recovery Strategies: The Missing Piece",
		Excerpt:     "Why rest days matter and how to optimize recovery for consistent progress and injury prevention.",
		Content:     "Recovery is when the magic happens - your body adapts and grows stronger. Learn the best strategies to maximize your recovery.",
		Category:    "Recovery",
		Author:      "Sarah Johnson",
		PublishDate: day(time.August, 5),
		ReadTime:    "7 min read",
		Image:       "https://images.pexels.com/photos/2827392/pexels-photo-2827392.jpeg",
	},
	{
		ID:          "6",
		Title:       "Functional Fitness: Training for Real Life",
		Excerpt:     "Move beyond the machines and discover exercises that improve everyday movement patterns and quality of life.",
		Content:     "Functional fitness focuses on movements that translate to daily activities. Build strength that matters in real life.",
		Category:    "Training Tips",
		Author:      "Mike Chen",
		PublishDate: day(time.August, 3),
		ReadTime:    "6 min read",
		Image:       "https://images.pexels.com/photos/841130/pexels-photo-841130.jpeg",
	},
	{
		ID:          "7",
		Title:       "Powerlifting Fundamentals: Squat, Bench, Deadlift",
		Excerpt:     "Master the big three compound movements that form the foundation of strength training programs.",
		Content:     "The squat, bench press, and deadlift are the cornerstones of powerlifting. Learn proper form and technique for maximum gains.",
		Category:    "Strength Training",
		Author:      "David Martinez",
		PublishDate: day(time.August, 1),
		ReadTime:    "9 min read",
		Image:       "https://images.unsplash.com/photo-1517836357463-d25dfeac3438",
	},
	{
		ID:          "8",
		Title:       "Home Workouts: No Gym, No Problem",
		Excerpt:     "Effective bodyweight exercises and minimal equipment routines you can do anywhere, anytime.",
		Content:     "You don't need a fancy gym membership to stay fit and build strength. Discover effective home workout strategies.",
		Category:    "Training Tips",
		Author:      "Emma Davis",
		PublishDate: day(time.July, 28),
		ReadTime:    "7 min read",
		Image:       "https://images.pexels.com/photos/1552242/pexels-photo-1552242.jpeg",
	},
}

// Articles returns the sample articles stamped with now as creation and update time.
func Articles(now time.Time) []domain.Article {
	now = domain.Timestamp(now)
	out := make([]domain.Article, 0, len(articles))
	for _, s := range articles {
		out = append(out, domain.Article{
			ID:          s.ID,
			Title:       s.Title,
			Excerpt:     s.Excerpt,
			Content:     s.Content,
			Category:    s.Category,
			Author:      s.Author,
			PublishDate: s.PublishDate,
			ReadTime:    s.ReadTime,
			Image:       s.Image,
			Featured:    s.Featured,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}

// Preparer creates the schema or indexes the articles are stored in.
type Preparer interface {
	Prepare(ctx context.Context) error
}

// Reset prepares the store, then replaces its articles with the sample set.
func Reset(ctx context.Context, p Preparer, store ArticleStore) (int, error) {
	if err := p.Prepare(ctx); err != nil {
		return 0, fmt.Errorf("prepare store: %w", err)
	}
	return Apply(ctx, store)
}

// Apply replaces every stored article with the sample set and returns how many were inserted.
func Apply(ctx context.Context, store ArticleStore) (int, error) {
	if _, err := store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear articles: %w", err)
	}
	inserted := 0
	for _, a := range Articles(time.Now()) {
		if err := store.Insert(ctx, a); err != nil {
			return inserted, fmt.Errorf("insert article %s: %w", a.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
