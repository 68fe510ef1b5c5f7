package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type departmentSeed struct {
	Name        string
	Code        string
	Description string
}

var departmentSeeds = []departmentSeed{
	{Name: "Отдел информационных технологий", Code: "IT", Description: "Компьютеры, серверы и сетевое оборудование"},
	{Name: "Отдел кадров", Code: "HR", Description: "Управление персоналом"},
	{Name: "Финансовый отдел", Code: "FIN", Description: "Бухгалтерия и финансовое планирование"},
	{Name: "Административно-хозяйственный отдел", Code: "AHO", Description: "Хозяйственное обеспечение офиса"},
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание департаментов...")

	for _, d := range departmentSeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO departments (name, code, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (code) DO NOTHING`,
			d.Name, d.Code, d.Description)
		if err != nil {
			return fmt.Errorf("ошибка создания департамента %q: %w", d.Code, err)
		}
	}
	return nil
}
