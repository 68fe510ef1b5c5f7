package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name        string
	Code        string
	Description string
}

var categorySeeds = []categorySeed{
	{Name: "Компьютерная техника", Code: "COMP", Description: "Ноутбуки, системные блоки, мониторы"},
	{Name: "Офисная мебель", Code: "FURN", Description: "Столы, стулья, шкафы"},
	{Name: "Оргтехника", Code: "OFFICE", Description: "Принтеры, сканеры, МФУ"},
	{Name: "Транспорт", Code: "TRANSP", Description: "Служебные автомобили"},
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание категорий...")

	for _, c := range categorySeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name, code, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (code) DO NOTHING`,
			c.Name, c.Code, c.Description)
		if err != nil {
			return fmt.Errorf("ошибка создания категории %q: %w", c.Code, err)
		}
	}
	return nil
}
