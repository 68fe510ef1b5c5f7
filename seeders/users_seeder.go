package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"property-control/internal/entities"
	"property-control/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание администратора...")

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", "admin").Scan(&existingID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка проверки существования администратора: %w", err)
	}

	hashedPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля администратора: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (username, email, first_name, last_name, password, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE)`,
		"admin", "admin@property-control.local", "Главный", "Администратор",
		hashedPassword, entities.RoleAdmin)
	if err != nil {
		return fmt.Errorf("ошибка создания администратора: %w", err)
	}
	return nil
}

type demoUserSeed struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	DepartmentCode string
}

var demoUserSeeds = []demoUserSeed{
	{Username: "i.petrov", Email: "i.petrov@property-control.local", FirstName: "Иван", LastName: "Петров", DepartmentCode: "IT"},
	{Username: "a.sidorova", Email: "a.sidorova@property-control.local", FirstName: "Анна", LastName: "Сидорова", DepartmentCode: "HR"},
	{Username: "s.rahimov", Email: "s.rahimov@property-control.local", FirstName: "Сухроб", LastName: "Рахимов", DepartmentCode: "FIN"},
}

func seedDemoUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание демо-пользователей...")

	hashedPassword, err := utils.HashPassword("demo12345")
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	for _, u := range demoUserSeeds {
		var departmentID uint64
		if err := db.QueryRow(ctx, "SELECT id FROM departments WHERE code = $1", u.DepartmentCode).Scan(&departmentID); err != nil {
			return fmt.Errorf("не найден департамент %q для пользователя %q: %w", u.DepartmentCode, u.Username, err)
		}

		_, err := db.Exec(ctx,
			`INSERT INTO users (username, email, first_name, last_name, password, role, department_id, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			 ON CONFLICT (username) DO NOTHING`,
			u.Username, u.Email, u.FirstName, u.LastName,
			hashedPassword, entities.RoleUser, departmentID)
		if err != nil {
			return fmt.Errorf("ошибка создания пользователя %q: %w", u.Username, err)
		}
	}
	return nil
}
