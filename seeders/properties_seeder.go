package seeders

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"property-control/internal/entities"
)

type propertySeed struct {
	Name            string
	Description     string
	CategoryCode    string
	DepartmentCode  string
	Status          string
	PurchasePrice   float64
	CurrentValue    float64
	SerialNumber    string
	InventoryNumber string
	Brand           string
	Model           string
}

var propertySeeds = []propertySeed{
	{
		Name: "Ноутбук Dell Latitude 5540", Description: "Рабочий ноутбук разработчика",
		CategoryCode: "COMP", DepartmentCode: "IT", Status: entities.PropertyStatusActive,
		PurchasePrice: 1200, CurrentValue: 900,
		SerialNumber: "DL5540-0001", InventoryNumber: "INV-0001", Brand: "Dell", Model: "Latitude 5540",
	},
	{
		Name: "МФУ HP LaserJet Pro M428", Description: "Общий принтер второго этажа",
		CategoryCode: "OFFICE", DepartmentCode: "AHO", Status: entities.PropertyStatusActive,
		PurchasePrice: 450, CurrentValue: 300,
		SerialNumber: "HPM428-0001", InventoryNumber: "INV-0002", Brand: "HP", Model: "LaserJet Pro M428",
	},
	{
		Name: "Стол офисный", Description: "Угловой стол руководителя",
		CategoryCode: "FURN", DepartmentCode: "HR", Status: entities.PropertyStatusActive,
		PurchasePrice: 250, CurrentValue: 180,
		InventoryNumber: "INV-0003",
	},
	{
		Name: "Сервер HPE ProLiant DL380", Description: "Сервер баз данных",
		CategoryCode: "COMP", DepartmentCode: "IT", Status: entities.PropertyStatusUnderMaintenance,
		PurchasePrice: 8500, CurrentValue: 6000,
		SerialNumber: "HPE380-0001", InventoryNumber: "INV-0004", Brand: "HPE", Model: "ProLiant DL380 Gen10",
	},
}

func seedProperties(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание имущества...")

	var adminID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", "admin").Scan(&adminID); err != nil {
		return fmt.Errorf("администратор не найден, сначала запустите сидер пользователей: %w", err)
	}

	for _, p := range propertySeeds {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM properties WHERE inventory_number = $1", p.InventoryNumber).Scan(&existingID)
		if err == nil {
			continue
		}

		var categoryID, departmentID uint64
		if err := db.QueryRow(ctx, "SELECT id FROM categories WHERE code = $1", p.CategoryCode).Scan(&categoryID); err != nil {
			return fmt.Errorf("не найдена категория %q: %w", p.CategoryCode, err)
		}
		if err := db.QueryRow(ctx, "SELECT id FROM departments WHERE code = $1", p.DepartmentCode).Scan(&departmentID); err != nil {
			return fmt.Errorf("не найден департамент %q: %w", p.DepartmentCode, err)
		}

		code := strings.ToUpper(uuid.New().String()[:8])
		_, err = db.Exec(ctx,
			`INSERT INTO properties (code, name, description, category_id, department_id,
				current_department_id, status, purchase_price, current_value,
				serial_number, inventory_number, brand, model, created_by)
			 VALUES ($1, $2, $3, $4, $5, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			code, p.Name, p.Description, categoryID, departmentID, p.Status,
			p.PurchasePrice, p.CurrentValue, p.SerialNumber, p.InventoryNumber,
			p.Brand, p.Model, adminID)
		if err != nil {
			return fmt.Errorf("ошибка создания имущества %q: %w", p.Name, err)
		}
	}
	return nil
}
