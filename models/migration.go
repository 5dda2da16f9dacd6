package models

import (
	"log"

	"bitbucket.org/mmdatafocus/inventory_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Staff{},
		&Product{},
		&ImportHistory{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
