package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
)

// Seed returns the demo catalog the storefront starts with.
func Seed() []Product {
	return []Product{
		{
			ID:           "1",
			Title:        "Мастер и Маргарита",
			Author:       strPtr("Михаил Булгаков"),
			Price:        price(450),
			OldPrice:     pricePtr(590),
			Category:     enums.ProductCategoryBooks,
			Image:        "https://picsum.photos/seed/book1/400/600",
			Rating:       4.9,
			ReviewsCount: 1250,
			Description:  "Культовый роман о добре и зле, любви и предательстве.",
			Tags:         []string{"Классика", "Бестселлер"},
			InStock:      true,
		},
		{
			ID:           "2",
			Title:        "Скетчбук для акварели А5",
			Price:        price(890),
			Category:     enums.ProductCategoryStationery,
			Image:        "https://picsum.photos/seed/sketch1/400/600",
			Rating:       4.7,
			ReviewsCount: 340,
			Description:  "Плотная бумага 300 г/м², подходит для мокрых техник.",
			Tags:         []string{"Для художников"},
			IsNew:        true,
			InStock:      true,
		},
		{
			ID:           "3",
			Title:        "Тревожные люди",
			Author:       strPtr("Фредрик Бакман"),
			Price:        price(520),
			Category:     enums.ProductCategoryBooks,
			Image:        "https://picsum.photos/seed/book3/400/600",
			Rating:       4.8,
			ReviewsCount: 890,
			Description:  "Ироничная история о захвате заложников, который пошёл не по плану.",
			Tags:         []string{"Современная проза"},
			IsNew:        true,
			InStock:      true,
		},
		{
			ID:           "4",
			Title:        "Набор гелевых ручек, 12 цветов",
			Price:        price(350),
			OldPrice:     pricePtr(420),
			Category:     enums.ProductCategoryStationery,
			Image:        "https://picsum.photos/seed/pens1/400/600",
			Rating:       4.5,
			ReviewsCount: 215,
			Description:  "Яркие цвета, не мажутся, подходят для скетчей и конспектов.",
			Tags:         []string{"Школа", "Офис"},
			InStock:      true,
		},
		{
			ID:           "5",
			Title:        "1984",
			Author:       strPtr("Джордж Оруэлл"),
			Price:        price(380),
			Category:     enums.ProductCategoryBooks,
			Image:        "https://picsum.photos/seed/book5/400/600",
			Rating:       4.9,
			ReviewsCount: 2100,
			Description:  "Антиутопия, которую читают уже семьдесят лет.",
			Tags:         []string{"Классика", "Антиутопия"},
			InStock:      true,
		},
		{
			ID:           "6",
			Title:        "Подарочный набор «Юный художник»",
			Price:        price(1490),
			OldPrice:     pricePtr(1790),
			Category:     enums.ProductCategorySets,
			Image:        "https://picsum.photos/seed/set1/400/600",
			Rating:       4.6,
			ReviewsCount: 95,
			Description:  "Краски, кисти и альбом в подарочной коробке.",
			Tags:         []string{"Подарок", "Детям"},
			InStock:      true,
		},
		{
			ID:           "7",
			Title:        "Акриловые краски, 24 цвета",
			Price:        price(1150),
			Category:     enums.ProductCategoryArt,
			Image:        "https://picsum.photos/seed/art1/400/600",
			Rating:       4.4,
			ReviewsCount: 180,
			Description:  "Насыщенные пигменты, быстро сохнут, держатся на любых поверхностях.",
			Tags:         []string{"Для художников"},
			InStock:      true,
		},
		{
			ID:           "8",
			Title:        "Маленький принц",
			Author:       strPtr("Антуан де Сент-Экзюпери"),
			Price:        price(320),
			Category:     enums.ProductCategoryBooks,
			Image:        "https://picsum.photos/seed/book8/400/600",
			Rating:       4.9,
			ReviewsCount: 1780,
			Description:  "Сказка для взрослых о самом важном.",
			Tags:         []string{"Классика", "Детям"},
			InStock:      false,
		},
		{
			ID:           "9",
			Title:        "Планер на год, твёрдая обложка",
			Price:        price(650),
			Category:     enums.ProductCategoryStationery,
			Image:        "https://picsum.photos/seed/planner/400/600",
			Rating:       4.3,
			ReviewsCount: 130,
			Description:  "Недатированный планер с разделами для целей и заметок.",
			Tags:         []string{"Офис"},
			IsNew:        true,
			InStock:      true,
		},
		{
			ID:           "10",
			Title:        "Холст на подрамнике 40×50",
			Price:        price(540),
			Category:     enums.ProductCategoryArt,
			Image:        "https://picsum.photos/seed/canvas/400/600",
			Rating:       4.5,
			ReviewsCount: 75,
			Description:  "Хлопковый холст среднего зерна, загрунтован.",
			Tags:         []string{"Для художников"},
			InStock:      true,
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func price(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func pricePtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}
