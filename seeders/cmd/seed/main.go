package main

import (
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"property-control/pkg/config"
	"property-control/pkg/database/postgresql"
	"property-control/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)            ")
	log.Println("======================================================")

	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (департаменты, категории)")
	runUsers := flag.Bool("users", false, "Создать администратора и демо-пользователей")
	runProperties := flag.Bool("properties", false, "Создать демонстрационное имущество")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runDictionaries && !*runUsers && !*runProperties && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -dictionaries")
		log.Println("  go run ./seeders/cmd/seed/main.go -dictionaries -users")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	// Порядок важен: имущество ссылается на справочники и пользователей
	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runProperties {
		seeders.SeedProperties(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
