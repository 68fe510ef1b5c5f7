package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочники: департаменты и категории.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Департаментов: %v", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Категорий: %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedUsers создаёт администратора и демонстрационных пользователей.
// Зависит от уже созданных департаментов.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания пользователей...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	if err := seedDemoUsers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания демо-пользователей: %v", err)
	}
	log.Println("✅ Создание пользователей завершено!")
}

// SeedProperties создаёт демонстрационное имущество.
// Зависит от департаментов, категорий и администратора.
func SeedProperties(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения имущества...")

	if err := seedProperties(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Имущества: %v", err)
	}
	log.Println("✅ Наполнение имущества завершено!")
}
