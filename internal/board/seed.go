package board

import "github.com/thenoetrevino/dreamscape/internal/models"

// SeedItems returns the fixed set every board load starts from
func SeedItems() []models.BoardItem {
	return []models.BoardItem{
		{
			ID:       "1",
			Kind:     models.KindImage,
			Content:  "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=600&q=80",
			Position: models.Position{X: 100, Y: 100},
			Size:     models.Size{Width: 250, Height: 200},
		},
		{
			ID:       "2",
			Kind:     models.KindQuote,
			Content:  "The future belongs to those who believe in the beauty of their dreams.",
			Position: models.Position{X: 400, Y: 150},
			Size:     models.Size{Width: 300, Height: 150},
		},
		{
			ID:       "3",
			Kind:     models.KindProgress,
			Content:  "Learn Spanish:70",
			Position: models.Position{X: 200, Y: 350},
			Size:     models.Size{Width: 250, Height: 100},
		},
		{
			ID:       "4",
			Kind:     models.KindGoal,
			Content:  "Travel to Japan:2024",
			Position: models.Position{X: 500, Y: 350},
			Size:     models.Size{Width: 250, Height: 150},
		},
	}
}
